package cli

import (
	"github.com/spf13/cobra"
)

const helpTemplate = `dockergen - Docker training data generator

USAGE
  dockergen <command> [flags]

COMMANDS
  dockerfile                  Generate a user question for every Dockerfile in a directory
  compose                     Generate docker-compose.yml entries for every image in a list
  info                        Generate image information entries for every image in a list
  status [generator...]       Show the last recorded run of each generator

FLAGS
  Backend:
    -p, --provider <name>           openai, huggingface, ollama or gemini
    -m, --model <name>              Model name (default depends on generator and provider)
    --base-url <url>                Override the backend endpoint

  Sampling:
    --temperature <float>           Sampling temperature (dockerfile 0.6, compose/info 0.7)
    --top-p <float>                 Nucleus sampling (dockerfile 0.7, compose/info backend default)
    --max-tokens <int>              Maximum tokens per completion (dockerfile 512, compose/info 700)

  Request Loop:
    --max-retries <int>             Generation attempts per item (default: 3)
    --requests-per-minute <int>     Throttle requests (default: 0, disabled)

  Paths:
    -i, --input <path>              Input directory (dockerfile) or list file (compose, info)
    -o, --output <path>             Output JSONL file, appended to
    --log-dir <dir>                 Directory for success.log, failure.log and run-state.json
    --exclude <pattern,...>         Gitignore-style patterns of input files to skip
    --config <path>                 Path to additional config file

  Runtime:
    --fresh                         Discard logs, run state and output before starting
    -v, --verbose                   Print debug output

  Help & Version:
    -h, --help                      Show this help text
    --version                       Show version, commit, build date

CONFIGURATION
  Defaults < .dockergen < --config file < flags. Config files use KEY=VALUE
  lines (PROVIDER, MODEL, BASE_URL, TEMPERATURE, TOP_P, MAX_TOKENS,
  MAX_RETRIES, REQUESTS_PER_MINUTE, INPUT, OUTPUT, LOG_DIR, EXCLUDE, VERBOSE).
  API keys are read from the environment or .env: OPENAI_API_KEY,
  API_TOKEN or HF_TOKEN, GEMINI_API_KEY or GOOGLE_API_KEY.

EXIT CODES
  0   Success              Every pending item succeeded
  1   Error                Invalid arguments, unreadable input, misconfiguration
  2   ItemsFailed          Run finished with at least one failed item
  130 Interrupted          SIGINT or SIGTERM received

EXAMPLES
  # Questions for a directory of Dockerfiles via the Hugging Face router
  dockergen dockerfile --input dockerfiles/sources-gold

  # Compose entries with a local Ollama model, 30 requests per minute
  dockergen compose --provider ollama --model mistral --requests-per-minute 30

  # Rerun after an interruption: completed items are skipped
  dockergen info

  # Check progress
  dockergen status compose
`

// SetCustomHelp configures the cobra command to use our custom help template.
func SetCustomHelp(cmd *cobra.Command) {
	cmd.SetHelpTemplate(helpTemplate)
}
