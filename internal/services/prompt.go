package services

import (
	"fmt"
	"strings"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildAnswerAnalysisPrompt creates the prompt for scoring one interview answer.
// The model is instructed to return JSON matching the FeedbackRecord shape
// exactly, with exactly 3 strengths and 3 improvements.
func (pb *PromptBuilder) BuildAnswerAnalysisPrompt(question, answer, jobRole, jobDescription string) string {
	return fmt.Sprintf(`You are an expert interview coach and HR professional. Your task is to analyze interview answers and provide constructive, professional feedback.

You must respond ONLY with valid JSON in this exact format:
{
    "clarity": <score 0-100>,
    "structure": <score 0-100>,
    "content": <score 0-100>,
    "confidence": <score 0-100>,
    "overall_score": <score 0-100>,
    "strengths": ["strength 1", "strength 2", "strength 3"],
    "improvements": ["improvement 1", "improvement 2", "improvement 3"]
}

Scoring criteria:
- Clarity (0-100): How clear and well-articulated the answer is
- Structure (0-100): How well-organized and logical the response is
- Content (0-100): Relevance, depth, and quality of the content
- Confidence (0-100): How confident and professional the delivery sounds
- Overall Score: Average of the four metrics

Provide exactly 3 strengths and 3 areas for improvement. Be specific and actionable.

Analyze this interview answer:

QUESTION: %s

ANSWER: %s

JOB ROLE: %s

JOB DESCRIPTION: %s

Provide your analysis in the required JSON format only.`,
		question, answer, jobRole, jobDescription)
}

// BuildQuestionnairePrompt creates the single combined prompt for the career
// questionnaire assessment. Instructions and data travel in one content block.
func (pb *PromptBuilder) BuildQuestionnairePrompt(q Questionnaire) string {
	system := `Você é Nexo, um mentor de carreira que analisa respostas de um questionário e orienta jovens profissionais a alcançarem seus objetivos. Sua comunicação deve ser objetiva, construtiva e motivacional.

Considere o objetivo profissional informado pelo candidato e suas competências atuais. Avalie se as habilidades e experiências atuais estão alinhadas com esse objetivo e retorne apenas um JSON conforme a estrutura a seguir:
{
  "pontos_fortes": ["<competência1>", "<competência2>", ...],
  "pontos_a_melhorar": ["<área1>", "<área2>", ...],
  "recomendacoes": ["<sugestão1>", "<sugestão2>", ...],
  "nivel": "iniciante" | "intermediario" | "pronto",
  "score": <0-100>,
  "mensagem_motivacional": "<mensagem de incentivo>"
}

Analise cuidadosamente as competências e o objetivo. Se faltar alguma habilidade essencial para alcançar o objetivo, indique-a em pontos_a_melhorar e proponha-a também nas recomendações. Sempre finalize com uma mensagem positiva.`

	user := fmt.Sprintf(`Objetivo profissional (base de requisitos): %s
1. Experiência/estágios/voluntariado: %s
2. Habilidades técnicas: %s
3. Competências comportamentais: %s
4. Desafio enfrentado e aprendizado: %s`,
		q.Objective, q.Answer1, q.Answer2, q.Answer3, q.Answer4)

	return system + "\n\n" + user
}

// BuildQuestionRetrievalQuery creates the query text embedded for
// job-relevant question retrieval.
func (pb *PromptBuilder) BuildQuestionRetrievalQuery(jobRole, jobDescription string) string {
	if strings.TrimSpace(jobDescription) == "" {
		return fmt.Sprintf("Interview questions for a %s position", jobRole)
	}
	return fmt.Sprintf("Interview questions for a %s position. Job description: %s", jobRole, jobDescription)
}
