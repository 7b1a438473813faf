package term

import (
	"fmt"
	"os"

	"github.com/cqroot/prompt"
	"github.com/cqroot/prompt/input"
	"github.com/eiannone/keyboard"
	"github.com/fatih/color"
)

func GetUserStringInput(msg string) (string, error) {
	return GetUserStringInputWithDefault(msg, "")
}

func GetUserStringInputWithDefault(msg, def string) (string, error) {
	res, err := prompt.New().Ask(msg).Input(def)

	if err != nil && err.Error() == "user quit prompt" {
		os.Exit(0)
	}

	return res, err
}

func GetUserPasswordInput(msg string) (string, error) {
	res, err := prompt.New().Ask(msg).Input("", input.WithEchoMode(input.EchoPassword))

	if err != nil && err.Error() == "user quit prompt" {
		os.Exit(0)
	}

	return res, err
}

// GetEditorInput collects multi-line input, ending on an empty line.
func GetEditorInput(msg string) (string, error) {
	color.New(color.Bold, ColorHiMagenta).Println(msg)
	fmt.Println("(finish with an empty line)")

	var lines []string
	for {
		line, err := GetUserStringInput("")
		if err != nil {
			return "", err
		}
		if line == "" {
			break
		}
		lines = append(lines, line)
	}

	res := ""
	for i, line := range lines {
		if i > 0 {
			res += "\n"
		}
		res += line
	}

	return res, nil
}

func GetUserKeyInput() (rune, error) {
	if err := keyboard.Open(); err != nil {
		return 0, fmt.Errorf("failed to open keyboard: %s", err)
	}
	defer func() {
		_ = keyboard.Close()
	}()

	char, _, err := keyboard.GetKey()
	if err != nil {
		return 0, fmt.Errorf("failed to read keypress: %s", err)
	}

	return char, nil
}

func ConfirmYesNo(fmtStr string, fmtArgs ...interface{}) (bool, error) {
	color.New(ColorHiMagenta, color.Bold).Printf(fmtStr+" (y)es | (n)o", fmtArgs...)
	color.New(ColorHiMagenta, color.Bold).Print("> ")

	char, err := GetUserKeyInput()
	if err != nil {
		return false, fmt.Errorf("failed to get user input: %s", err)
	}

	fmt.Println(string(char))
	if char == 'y' || char == 'Y' {
		return true, nil
	} else if char == 'n' || char == 'N' {
		return false, nil
	}

	return ConfirmYesNo(fmtStr, fmtArgs...)
}
