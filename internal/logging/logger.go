// Package logging provides colored, leveled log output for the dockergen CLI.
//
// Every output function writes a prefixed, color-coded line to the terminal.
// When a log file is attached with SetLogFile, the same line is mirrored
// without color to a size-rotated file. Debug output is suppressed unless
// verbose mode is enabled via SetVerbose(true).
package logging

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/fatih/color"
	"gopkg.in/natefinch/lumberjack.v2"
)

// verbose controls whether Debug() produces output.
var verbose bool

// Color printers for each log level.
var (
	infoPrefix    = color.New(color.FgBlue).SprintFunc()
	successPrefix = color.New(color.FgGreen).SprintFunc()
	warnPrefix    = color.New(color.FgYellow).SprintFunc()
	errorPrefix   = color.New(color.FgRed).SprintFunc()
	phasePrefix   = color.New(color.FgCyan).SprintFunc()
	debugPrefix   = color.New(color.FgBlue).SprintFunc()
)

var (
	fileMu     sync.Mutex
	fileSink   *lumberjack.Logger
	fileLogger *log.Logger
)

// SetVerbose enables or disables Debug output.
func SetVerbose(v bool) {
	verbose = v
}

// SetLogFile mirrors every log line to path, rotating the file once it grows
// past 10 MB and keeping three compressed backups. An empty path detaches the
// current file.
func SetLogFile(path string) error {
	fileMu.Lock()
	defer fileMu.Unlock()

	if fileSink != nil {
		_ = fileSink.Close()
		fileSink = nil
		fileLogger = nil
	}
	if path == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}

	fileSink = &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}
	fileLogger = log.New(fileSink, "", log.LstdFlags)
	return nil
}

// Close flushes and detaches the log file, if any.
func Close() error {
	fileMu.Lock()
	defer fileMu.Unlock()

	if fileSink == nil {
		return nil
	}
	err := fileSink.Close()
	fileSink = nil
	fileLogger = nil
	return err
}

func mirror(level, msg string) {
	fileMu.Lock()
	defer fileMu.Unlock()

	if fileLogger == nil {
		return
	}
	fileLogger.Printf("%s %s", level, msg)
}

// Info prints an informational message to stdout in blue.
func Info(msg string) {
	fmt.Println(infoPrefix("[INFO]") + " " + msg)
	mirror("[INFO]", msg)
}

// Success prints a success message to stdout in green.
func Success(msg string) {
	fmt.Println(successPrefix("[SUCCESS]") + " " + msg)
	mirror("[SUCCESS]", msg)
}

// Warn prints a warning message to stdout in yellow.
func Warn(msg string) {
	fmt.Println(warnPrefix("[WARN]") + " " + msg)
	mirror("[WARN]", msg)
}

// Error prints an error message to stderr in red.
func Error(msg string) {
	fmt.Fprintln(os.Stderr, errorPrefix("[ERROR]")+" "+msg)
	mirror("[ERROR]", msg)
}

// Phase prints a step header to stdout in cyan, surrounded by separator lines.
func Phase(msg string) {
	sep := phasePrefix("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Println(sep)
	fmt.Println(phasePrefix("[STEP]") + " " + msg)
	fmt.Println(sep)
	mirror("[STEP]", msg)
}

// Debug prints a debug message to stdout in blue, only when verbose mode is enabled.
// The log file receives debug lines regardless of verbosity.
func Debug(msg string) {
	mirror("[DEBUG]", msg)
	if !verbose {
		return
	}
	fmt.Println(debugPrefix("[DEBUG]") + " " + msg)
}

// FormatDuration converts a duration in seconds to a human-readable string.
//
// Examples:
//
//	FormatDuration(0)    => "0s"
//	FormatDuration(45)   => "45s"
//	FormatDuration(90)   => "1m 30s"
//	FormatDuration(3661) => "1h 1m 1s"
func FormatDuration(seconds int) string {
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}
	if seconds < 3600 {
		return fmt.Sprintf("%dm %ds", seconds/60, seconds%60)
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%dh %dm %ds", h, m, s)
}
