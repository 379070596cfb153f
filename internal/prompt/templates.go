package prompt

import _ "embed"

// Template files embedded at compile time
var (
	//go:embed templates/dockerfile-question.txt
	DockerfileQuestionTemplate string

	//go:embed templates/compose-entries.txt
	ComposeEntriesTemplate string

	//go:embed templates/info-entries.txt
	InfoEntriesTemplate string
)
