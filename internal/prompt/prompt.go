/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Prompter defines the interface for user prompting
type Prompter interface {
	ConfirmProvisioning(stackName, region string) (bool, error)
	ConfirmDeletion(stackName, region string) (bool, error)
}

// StdinPrompter implements Prompter using standard input
type StdinPrompter struct {
	input  io.Reader
	output io.Writer
}

// NewStdinPrompter creates a new prompter that reads from stdin
func NewStdinPrompter() *StdinPrompter {
	return NewPrompter(os.Stdin, os.Stdout)
}

// NewPrompter creates a prompter over arbitrary streams
func NewPrompter(input io.Reader, output io.Writer) *StdinPrompter {
	return &StdinPrompter{input: input, output: output}
}

// ConfirmProvisioning asks the user to confirm provisioning a client stack
func (p *StdinPrompter) ConfirmProvisioning(stackName, region string) (bool, error) {
	return p.confirm(fmt.Sprintf("Do you want to provision stack %s in %s?", stackName, region))
}

// ConfirmDeletion asks the user to confirm deleting a client stack
func (p *StdinPrompter) ConfirmDeletion(stackName, region string) (bool, error) {
	return p.confirm(fmt.Sprintf("Do you want to delete stack %s in %s? This cannot be undone.", stackName, region))
}

func (p *StdinPrompter) confirm(question string) (bool, error) {
	_, _ = fmt.Fprintf(p.output, "\n%s [y/N]: ", question)

	scanner := bufio.NewScanner(p.input)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return false, fmt.Errorf("failed to read user input: %w", err)
		}
		// EOF counts as "no"
		return false, nil
	}

	return isConfirmation(scanner.Text()), nil
}

// isConfirmation accepts only an explicit y or yes
func isConfirmation(input string) bool {
	response := strings.ToLower(strings.TrimSpace(input))
	return response == "y" || response == "yes"
}

// defaultPrompter is the package-level default prompter
var defaultPrompter Prompter = NewStdinPrompter()

// SetPrompter allows injection of a custom prompter (for testing)
func SetPrompter(p Prompter) {
	defaultPrompter = p
}

// GetDefaultPrompter returns the current default prompter (for testing)
func GetDefaultPrompter() Prompter {
	return defaultPrompter
}

// ConfirmProvisioning prompts the user using the default prompter.
// Returns true if the user confirms (y/yes), false otherwise.
func ConfirmProvisioning(stackName, region string) (bool, error) {
	return defaultPrompter.ConfirmProvisioning(stackName, region)
}

// ConfirmDeletion prompts for a stack deletion using the default prompter
func ConfirmDeletion(stackName, region string) (bool, error) {
	return defaultPrompter.ConfirmDeletion(stackName, region)
}
