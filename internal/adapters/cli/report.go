package cli

import (
	"fmt"
	"io"
	"time"
)

type Step struct {
	Name      string
	StartTime time.Time
	EndTime   time.Time
	Success   bool
	Error     string
}

type reportOutput interface {
	Green(text string) string
	Yellow(text string) string
	Red(text string) string
	Gray(text string) string
	Out() io.Writer
	ErrOut() io.Writer
}

type Issue struct {
	Subject string
	Message string
	Details []string
}

// Report collects the steps, warnings and errors of one generation run and
// prints a summary once the run is over.
type Report struct {
	output        reportOutput
	steps         []Step
	warnings      []Issue
	errors        []Issue
	startTime     time.Time
	artifactCount int
	outputDir     string
	hasFailures   bool
}

func NewReport(output reportOutput, outputDir string) *Report {
	return &Report{
		output:    output,
		steps:     make([]Step, 0),
		warnings:  make([]Issue, 0),
		errors:    make([]Issue, 0),
		startTime: time.Now(),
		outputDir: outputDir,
	}
}

func (r *Report) AddArtifacts(count int) {
	r.artifactCount += count
}

func (r *Report) ArtifactCount() int {
	return r.artifactCount
}

func (r *Report) StartStep(name string) int {
	r.steps = append(r.steps, Step{
		Name:      name,
		StartTime: time.Now(),
	})
	return len(r.steps) - 1
}

func (r *Report) EndStep(step int, err error) {
	s := &r.steps[step]
	s.EndTime = time.Now()
	s.Success = err == nil
	if err != nil {
		s.Error = err.Error()
		r.hasFailures = true
	}
}

func (r *Report) Steps() []Step {
	return r.steps
}

func (r *Report) AddWarning(subject string, message string, details []string) {
	r.warnings = append(r.warnings, Issue{
		Subject: subject,
		Message: message,
		Details: details,
	})
}

func (r *Report) AddError(subject string, message string, details []string) {
	r.errors = append(r.errors, Issue{
		Subject: subject,
		Message: message,
		Details: details,
	})
	r.hasFailures = true
}

func (r *Report) Warnings() []Issue {
	return r.warnings
}

func (r *Report) Errors() []Issue {
	return r.errors
}

func (r *Report) HasFailures() bool {
	return r.hasFailures
}

func (r *Report) Render() {
	duration := time.Since(r.startTime)

	if len(r.errors) == 0 && len(r.warnings) == 0 && !r.hasFailures {
		r.renderMinimal(duration)
	} else {
		r.renderVerbose(duration)
	}
}

func (r *Report) renderMinimal(duration time.Duration) {
	out := r.output.Out()
	fmt.Fprintf(out, "  "+r.output.Green("✓ ")+"%d files generated in %s\n", r.artifactCount, formatDuration(duration))

	if r.outputDir != "" {
		fmt.Fprintf(out, "\n  %s\n", r.output.Gray("Output: "+r.outputDir))
	}
}

func (r *Report) renderVerbose(duration time.Duration) {
	out := r.output.Out()
	errOut := r.output.ErrOut()

	fmt.Fprintln(out)
	for _, step := range r.steps {
		status := r.output.Green("✓")
		if !step.Success {
			status = r.output.Red("✗")
		}
		fmt.Fprintf(out, "  %s %s\n", status, step.Name)
		if step.Error != "" {
			fmt.Fprintf(out, "      %s\n", step.Error)
		}
	}

	if len(r.errors) > 0 {
		fmt.Fprintln(errOut)
		fmt.Fprintf(errOut, "  "+r.output.Red("✗ ")+"Errors (%d):\n", len(r.errors))
		r.renderIssues(errOut, r.errors)
	}

	if len(r.warnings) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "  "+r.output.Yellow("⚠ ")+"Warnings (%d):\n", len(r.warnings))
		r.renderIssues(out, r.warnings)
	}

	fmt.Fprintln(out)
	if r.hasFailures {
		fmt.Fprintf(errOut, "  %s\n", r.output.Red(fmt.Sprintf("Generation failed after %s", formatDuration(duration))))
	} else {
		fmt.Fprintf(out, "  "+r.output.Green("✓ ")+"%d files generated in %s\n", r.artifactCount, formatDuration(duration))
	}

	if r.outputDir != "" {
		fmt.Fprintf(out, "\n  %s\n", r.output.Gray("Output: "+r.outputDir))
	}
}

func (r *Report) renderIssues(w io.Writer, issues []Issue) {
	for _, issue := range issues {
		fmt.Fprintf(w, "  %s %s\n", r.output.Red("✗"), issue.Subject)
		fmt.Fprintf(w, "    %s\n", issue.Message)

		for _, detail := range deduplicateStrings(issue.Details) {
			fmt.Fprintf(w, "      • %s\n", detail)
		}
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.0fms", float64(d)/float64(time.Millisecond))
	}
	return fmt.Sprintf("%.1fs", float64(d)/float64(time.Second))
}

func deduplicateStrings(items []string) []string {
	if len(items) <= 1 {
		return items
	}

	seen := make(map[string]int)
	order := make([]string, 0, len(items))
	for _, item := range items {
		if seen[item] == 0 {
			order = append(order, item)
		}
		seen[item]++
	}

	result := make([]string, 0, len(order))
	for _, item := range order {
		if count := seen[item]; count > 1 {
			result = append(result, fmt.Sprintf("%s (%d occurrences)", item, count))
		} else {
			result = append(result, item)
		}
	}
	return result
}
