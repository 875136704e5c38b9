package completion

import "fmt"

const analyzePromptTemplate = `Analyze this interview question and provide a detailed plan to approach the problem with pseudocode:

Question: %s
`

// BuildPrompt embeds the raw question text into the analysis instruction.
func BuildPrompt(question string) string {
	return fmt.Sprintf(analyzePromptTemplate, question)
}
