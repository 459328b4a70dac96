package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"nexocarreira/career-coach/internal/config"
	"nexocarreira/career-coach/internal/services"
)

// Standalone mode for the career questionnaire: reads the five answers from
// stdin and prints the structured assessment as formatted JSON.
func main() {
	cfg := config.Load()

	fmt.Println("=== Nexo Carreira: Análise via Gemini ===")
	fmt.Println("Preencha suas respostas. Ao final, a IA fornecerá um feedback estruturado.")
	fmt.Println()

	questions := []string{
		"Descreva sua experiência profissional, estágios ou trabalhos voluntários (se tiver):",
		"Quais são suas principais habilidades técnicas? (ferramentas, softwares, idiomas):",
		"Como você descreveria suas principais competências comportamentais?:",
		"Conte sobre um desafio que você enfrentou e o que aprendeu com ele:",
		"Quais são seus objetivos profissionais para os próximos 2 anos?:",
	}

	reader := bufio.NewReader(os.Stdin)
	answers := make([]string, 0, len(questions))
	for _, q := range questions {
		fmt.Printf("%s \n> ", q)
		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Fprintf(os.Stderr, "Erro ao ler resposta: %v\n", err)
			os.Exit(1)
		}
		answers = append(answers, strings.TrimSpace(line))
	}

	questionnaireService := services.NewQuestionnaireService(
		cfg.Gemini.APIKey,
		cfg.Gemini.Model,
		cfg.Gemini.BaseURL,
		cfg.Gemini.Timeout,
	)

	result, err := questionnaireService.AnalyzeQuestionnaire(context.Background(), services.Questionnaire{
		Answer1:   answers[0],
		Answer2:   answers[1],
		Answer3:   answers[2],
		Answer4:   answers[3],
		Objective: answers[4],
	})
	if err != nil {
		fmt.Printf("Erro ao analisar questionário: %v\n", err)
		return
	}

	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Erro ao formatar análise: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\nAnálise completa:")
	fmt.Println(string(output))
}
