package cli

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/termacli/terma/errors"
	"github.com/termacli/terma/launcher"
)

var execCmd = &cobra.Command{
	Use:   "exec <prompt>...",
	Short: "Turn a natural-language prompt into a shell command",
	Long: `Joins the arguments into a single prompt, forwards it to the terma
agent (starting one if necessary), and prints the suggested shell command.
You are then asked whether to run it.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExec,
}

func init() {
	rootCmd.AddCommand(execCmd)
}

func runExec(cmd *cobra.Command, args []string) error {
	prompt := strings.Join(args, " ")

	if !launcher.EnsureRunning(launcher.Options{}) {
		return errors.New("could not reach the terma agent; it did not come up in time")
	}

	response, err := launcher.Send("", prompt)
	if err != nil {
		return err
	}
	fmt.Println(response)

	// Error responses from the agent carry a remediation hint and are not
	// commands. A single line starting with "Invalid" is how the agent
	// reports them; do not offer to execute those.
	if strings.HasPrefix(response, "Invalid ") {
		return nil
	}

	fmt.Printf("Execute? [%s/N] ", color.GreenString("y"))
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return nil
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		shell := exec.Command("sh", "-c", response)
		shell.Stdin = os.Stdin
		shell.Stdout = os.Stdout
		shell.Stderr = os.Stderr
		return shell.Run()
	}
	return nil
}
