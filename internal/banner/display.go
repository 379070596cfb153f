// Package banner provides colored banner display functions for the dockergen CLI.
//
// All banner functions write formatted output to stdout with color-coded headers
// and separators. They mark the start and end of a run, interruptions, and the
// status report.
package banner

import (
	"fmt"
	"strings"

	"github.com/CodexForgeBR/dockergen/internal/logging"
	"github.com/fatih/color"
)

var (
	headerColor  = color.New(color.FgCyan, color.Bold).SprintFunc()
	successColor = color.New(color.FgGreen, color.Bold).SprintFunc()
	warnColor    = color.New(color.FgYellow, color.Bold).SprintFunc()
)

const separator = "═══════════════════════════════════════════════════"

// PrintStartupBanner displays the startup banner with run info.
//
// Example output:
//
//	═══════════════════════════════════════════════════
//	  dockergen - Docker training data generator
//	═══════════════════════════════════════════════════
//	  Run:        4d1c7a8e-5f3b-4a4e-9d7c-0b8e2a1f6c33
//	  Generator:  compose
//	  Provider:   openai
//	  Model:      gpt-3.5-turbo-0125
//	  Input:      data/scraped-images.txt
//	  Output:     jsonl/docker_compose_entries.jsonl
//	  Items:      12 pending, 30 already done
//	═══════════════════════════════════════════════════
func PrintStartupBanner(runID, generator, provider, model, input, output string, pending, done int) {
	sep := headerColor(separator)
	fmt.Println(sep)
	fmt.Println(headerColor("  dockergen - Docker training data generator"))
	fmt.Println(sep)
	fmt.Printf("  Run:        %s\n", runID)
	fmt.Printf("  Generator:  %s\n", generator)
	fmt.Printf("  Provider:   %s\n", provider)
	fmt.Printf("  Model:      %s\n", model)
	fmt.Printf("  Input:      %s\n", input)
	fmt.Printf("  Output:     %s\n", output)
	fmt.Printf("  Items:      %d pending, %d already done\n", pending, done)
	fmt.Println(sep)
}

// PrintCompletionBanner displays the end-of-run summary. The banner is green
// when every item succeeded and yellow otherwise.
func PrintCompletionBanner(total, success, failure int, durationSecs int) {
	paint := successColor
	title := "  ✓ All items processed successfully!"
	if failure > 0 {
		paint = warnColor
		title = fmt.Sprintf("  ⚠ Finished with %d failed item(s)", failure)
	}

	sep := paint(separator)
	fmt.Println(sep)
	fmt.Println(paint(title))
	fmt.Printf("  Processed: %d\n", total)
	fmt.Printf("  Success:   %d\n", success)
	fmt.Printf("  Failures:  %d\n", failure)
	fmt.Printf("  Duration:  %s (%ds)\n", logging.FormatDuration(durationSecs), durationSecs)
	fmt.Println(sep)
}

// PrintInterruptedBanner displays when a run is interrupted.
//
// Example output:
//
//	═══════════════════════════════════════════════════
//	  ⚠ Run interrupted
//	  Processed: 3
//	  Remaining: 9
//	  Run the same command again to continue
//	═══════════════════════════════════════════════════
func PrintInterruptedBanner(processed, remaining int) {
	sep := warnColor(separator)
	fmt.Println(sep)
	fmt.Println(warnColor("  ⚠ Run interrupted"))
	fmt.Printf("  Processed: %d\n", processed)
	fmt.Printf("  Remaining: %d\n", remaining)
	fmt.Println("  Run the same command again to continue")
	fmt.Println(sep)
}

// PrintStatusBanner displays the last recorded run of a generator.
func PrintStatusBanner(runID, generator, status string, total, success, failure int, lastUpdated string) {
	sep := strings.Repeat("─", 50)
	fmt.Println(sep)
	fmt.Printf("  Run:       %s\n", runID)
	fmt.Printf("  Generator: %s\n", generator)
	fmt.Printf("  Status:    %s\n", status)
	fmt.Printf("  Processed: %d (success %d, failures %d)\n", total, success, failure)
	fmt.Printf("  Updated:   %s\n", lastUpdated)
	fmt.Println(sep)
}
