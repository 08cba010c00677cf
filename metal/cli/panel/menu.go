package panel

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Matias-sh/mi-portafolio/pkg/cli"
	"golang.org/x/term"
)

type Menu struct {
	Choice *int
	Reader *bufio.Reader
	// ReadSecret reads a line without echo. It defaults to the terminal when
	// stdin is one and to Reader otherwise.
	ReadSecret func() (string, error)
}

func MakeMenu() Menu {
	menu := Menu{
		Reader: bufio.NewReader(os.Stdin),
	}

	menu.Print()

	return menu
}

func (p *Menu) PrintLine() {
	_, _ = p.Reader.ReadString('\n')
}

func (p *Menu) GetChoice() int {
	if p.Choice == nil {
		return 0
	}

	return *p.Choice
}

func (p *Menu) CaptureInput() error {
	fmt.Print(cli.YellowColour + "Select an option: " + cli.Reset)
	input, err := p.Reader.ReadString('\n')

	if err != nil {
		return fmt.Errorf("%s error reading input: %v %s", cli.RedColour, err, cli.Reset)
	}

	input = strings.TrimSpace(input)
	choice, err := strconv.Atoi(input)

	if err != nil {
		return fmt.Errorf("%s Please enter a valid number. %s", cli.RedColour, cli.Reset)
	}

	p.Choice = &choice

	return nil
}

func (p *Menu) Print() {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))

	if err != nil || width < 20 {
		width = 80
	}

	inner := width - 2

	border := "╔" + strings.Repeat("═", inner) + "╗"
	title := "║" + p.CenterText(" Portfolio Console ", inner) + "║"
	divider := "╠" + strings.Repeat("═", inner) + "╣"
	footer := "╚" + strings.Repeat("═", inner) + "╝"

	fmt.Println()
	fmt.Println(cli.CyanColour + border)
	fmt.Println(title)
	fmt.Println(divider)

	p.PrintOption("1) Create or reset an admin account", inner)
	p.PrintOption("2) Issue an admin token", inner)
	p.PrintOption("3) Run a database backup now", inner)
	p.PrintOption("4) Migrate the database schema", inner)
	p.PrintOption("5) Generate an app master key", inner)
	p.PrintOption("0) Exit", inner)

	fmt.Println(footer + cli.Reset)
}

// PrintOption left-pads a space, writes the text, then fills to the full inner width.
func (p *Menu) PrintOption(text string, inner int) {
	content := " " + text

	if len(content) > inner {
		content = content[:inner]
	}

	padding := inner - len(content)
	fmt.Printf("║%s%s║\n", content, strings.Repeat(" ", padding))
}

// CenterText centers s within width, padding with spaces.
func (p *Menu) CenterText(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}

	pad := width - len(s)
	left := pad / 2
	right := pad - left

	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

func (p *Menu) CaptureUsername() (string, error) {
	fmt.Print("Enter the admin username: ")

	username, err := p.Reader.ReadString('\n')

	if err != nil {
		return "", fmt.Errorf("%sError reading the username: %v %s", cli.RedColour, err, cli.Reset)
	}

	username = strings.TrimSpace(username)
	if username == "" {
		return "", fmt.Errorf("%sError: no username provided %s", cli.RedColour, cli.Reset)
	}

	return username, nil
}

// CapturePassword asks twice and fails when both entries differ.
func (p *Menu) CapturePassword() (string, error) {
	fmt.Print("Enter the password: ")
	first, err := p.readSecret()

	if err != nil {
		return "", fmt.Errorf("%sError reading the password: %v %s", cli.RedColour, err, cli.Reset)
	}

	fmt.Print("Repeat the password: ")
	second, err := p.readSecret()

	if err != nil {
		return "", fmt.Errorf("%sError reading the password: %v %s", cli.RedColour, err, cli.Reset)
	}

	if first == "" || first != second {
		return "", fmt.Errorf("%sError: the passwords are empty or do not match %s", cli.RedColour, cli.Reset)
	}

	return first, nil
}

func (p *Menu) readSecret() (string, error) {
	if p.ReadSecret != nil {
		return p.ReadSecret()
	}

	fd := int(os.Stdin.Fd())

	if term.IsTerminal(fd) {
		secret, err := term.ReadPassword(fd)
		fmt.Println()

		return strings.TrimSpace(string(secret)), err
	}

	line, err := p.Reader.ReadString('\n')

	return strings.TrimSpace(line), err
}
