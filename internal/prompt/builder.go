// Package prompt builds the prompts and system messages sent to the model
// for each generator.
package prompt

import "strings"

// System messages. The info generator asks with one system message and
// labels its entries with another.
const (
	DockerfileSystem = "You are a Dockerfile generator."
	ComposeSystem    = "You are a generator of docker-compose.yml files."
	InfoSystem       = "You are a generator of Docker image information."
	InfoEntrySystem  = "Provide detailed information about Docker images."
)

// DockerfilePrefix is the required start of a generated Dockerfile question.
const DockerfilePrefix = "Create a Dockerfile using"

// BuildDockerfilePrompt asks for a single question describing the Dockerfile
// whose text is content.
func BuildDockerfilePrompt(content string) string {
	return strings.ReplaceAll(DockerfileQuestionTemplate, "{{DOCKERFILE}}", strings.TrimSpace(content))
}

// BuildComposePrompt asks for docker-compose.yml entries for image.
func BuildComposePrompt(image string) string {
	return strings.ReplaceAll(ComposeEntriesTemplate, "{{IMAGE}}", image)
}

// BuildInfoPrompt asks for general information entries for image.
func BuildInfoPrompt(image string) string {
	return strings.ReplaceAll(InfoEntriesTemplate, "{{IMAGE}}", image)
}
