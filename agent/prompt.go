package agent

import "fmt"

// systemInstruction pins the model to a single unformatted shell command.
const systemInstruction = `You are a CLI tool that converts natural language into shell commands.
Respond with a one line valid shell command that fits the prompt's goal.
Do not generate commands that harm the system.
Do not provide explanations.
Do not format.`

// ComposePrompt builds the full prompt sent to the provider: the fixed
// instruction, the working-directory tree, and the user's request.
func ComposePrompt(tree, userPrompt string) string {
	return fmt.Sprintf("%s\nHere is the user's current file tree of the current directory:\n%s\n\nHere is the prompt:\n%s\n",
		systemInstruction, tree, userPrompt)
}
