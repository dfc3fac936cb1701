package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"text/tabwriter"
	"time"
)

// CLI flags
var (
	apiURL = flag.String("api-url", "http://localhost:8080", "Holdcalc API base URL")
	apiKey = flag.String("api-key", "", "API key for authenticated requests")
	runs   = flag.Int("runs", 5, "Number of runs per sample for averaging")
	output = flag.String("output", "benchmark-results.json", "JSON output file path")
)

// Sample disclaimers covering the common input shapes.
var samples = []struct {
	Label      string
	MainText   string
	Additional string
}{
	{"Short", "Subject to status. T&Cs apply.", ""},
	{"Rates", "Representative 9.9% APR. Rates from 3.5% p.a. subject to status.", ""},
	{"Contact", "Call 0800 123 4567 or visit www.example.co.uk for full terms.", ""},
	{"TwoBlock", "Offer ends 31 December 2024. T&Cs apply.", "Offer ends 31 December 2024. UK residents only. T&Cs apply."},
	{"Long", "Credit subject to status and affordability. Applicants must be 18 or over and UK residents. Representative 24.9% APR variable. Write to us at 1 High Street, London SW1A 1AA. Terms and conditions apply.", ""},
}

// --- Request / Response types (mirrors models package) ---

type calculateRequest struct {
	MainText       string `json:"main_text"`
	AdditionalText string `json:"additional_text,omitempty"`
}

type calculateResponse struct {
	Success    bool         `json:"success"`
	Main       blockResult  `json:"main"`
	Additional *blockResult `json:"additional,omitempty"`
	Total      totalResult  `json:"total"`
	Tips       []tip        `json:"tips,omitempty"`
	Timing     timingInfo   `json:"timing"`
	Error      *errorDetail `json:"error,omitempty"`
}

type blockResult struct {
	WordCount    int      `json:"word_count"`
	TotalSeconds float64  `json:"total_seconds"`
	Words        []string `json:"words"`
}

type totalResult struct {
	Seconds      float64 `json:"seconds"`
	WholeSeconds int     `json:"whole_seconds"`
	Frames       int     `json:"frames"`
}

type tip struct {
	Kind string `json:"kind"`
}

type timingInfo struct {
	TotalMs       int64 `json:"total_ms"`
	CalculationMs int64 `json:"calculation_ms"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// --- Benchmark result types ---

type runResult struct {
	Run           int     `json:"run"`
	LatencyMs     int64   `json:"latency_ms"`
	ServerMs      int64   `json:"server_ms"`
	CalculationMs int64   `json:"calculation_ms"`
	WordCount     int     `json:"word_count"`
	HoldSeconds   float64 `json:"hold_seconds"`
	TipCount      int     `json:"tip_count"`
	Success       bool    `json:"success"`
	Error         string  `json:"error,omitempty"`
}

type sampleAverages struct {
	LatencyMs     float64 `json:"latency_ms"`
	ServerMs      float64 `json:"server_ms"`
	CalculationMs float64 `json:"calculation_ms"`
}

type sampleResult struct {
	Label       string          `json:"label"`
	WordCount   int             `json:"word_count"`
	HoldSeconds float64         `json:"hold_seconds"`
	Runs        []runResult     `json:"runs"`
	Averages    *sampleAverages `json:"averages,omitempty"`
}

type benchmarkReport struct {
	Timestamp     string         `json:"timestamp"`
	APIURL        string         `json:"api_url"`
	RunsPerSample int            `json:"runs_per_sample"`
	Results       []sampleResult `json:"results"`
}

func main() {
	flag.Parse()

	fmt.Println("=== Holdcalc Benchmark Suite ===")
	fmt.Printf("API URL:      %s\n", *apiURL)
	fmt.Printf("Runs/sample:  %d\n", *runs)
	fmt.Printf("Output:       %s\n", *output)
	fmt.Println()

	// Quick connectivity check.
	if err := checkAPI(*apiURL); err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot reach API at %s: %v\n", *apiURL, err)
		fmt.Fprintf(os.Stderr, "Make sure Holdcalc is running (e.g. make run)\n")
		os.Exit(1)
	}

	report := benchmarkReport{
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		APIURL:        *apiURL,
		RunsPerSample: *runs,
	}

	for _, s := range samples {
		fmt.Printf("Benchmarking [%s] ...\n", s.Label)
		sr := sampleResult{Label: s.Label}

		for i := 1; i <= *runs; i++ {
			fmt.Printf("  Run %d/%d ... ", i, *runs)
			rr := benchmarkSample(s.MainText, s.Additional, i)
			if rr.Success {
				fmt.Printf("OK  %dms  %d words  %.1fs hold\n", rr.LatencyMs, rr.WordCount, rr.HoldSeconds)
				sr.WordCount = rr.WordCount
				sr.HoldSeconds = rr.HoldSeconds
			} else {
				fmt.Printf("FAILED: %s\n", rr.Error)
			}
			sr.Runs = append(sr.Runs, rr)
		}

		sr.Averages = computeAverages(sr.Runs)
		report.Results = append(report.Results, sr)
		fmt.Println()
	}

	// Print summary table.
	printTable(report.Results)

	// Write JSON report.
	if err := writeJSON(*output, report); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing JSON output: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("\nDetailed results written to %s\n", *output)
}

func checkAPI(baseURL string) error {
	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(baseURL + "/api/v1/health")
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

func benchmarkSample(mainText, additional string, run int) runResult {
	rr := runResult{Run: run}

	reqBody := calculateRequest{
		MainText:       mainText,
		AdditionalText: additional,
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		rr.Error = fmt.Sprintf("marshal error: %v", err)
		return rr
	}

	req, err := http.NewRequest("POST", *apiURL+"/api/v1/calculate", bytes.NewReader(bodyBytes))
	if err != nil {
		rr.Error = fmt.Sprintf("request error: %v", err)
		return rr
	}
	req.Header.Set("Content-Type", "application/json")
	if *apiKey != "" {
		req.Header.Set("X-API-Key", *apiKey)
	}

	client := &http.Client{Timeout: 30 * time.Second}
	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		rr.Error = fmt.Sprintf("request failed: %v", err)
		return rr
	}
	defer resp.Body.Close()
	rr.LatencyMs = time.Since(start).Milliseconds()

	var cr calculateResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		rr.Error = fmt.Sprintf("decode error: %v", err)
		return rr
	}

	rr.Success = cr.Success
	rr.ServerMs = cr.Timing.TotalMs
	rr.CalculationMs = cr.Timing.CalculationMs
	rr.WordCount = cr.Main.WordCount
	if cr.Additional != nil {
		rr.WordCount += cr.Additional.WordCount
	}
	rr.HoldSeconds = cr.Total.Seconds
	rr.TipCount = len(cr.Tips)

	if cr.Error != nil {
		rr.Error = cr.Error.Message
	}

	return rr
}

func computeAverages(runs []runResult) *sampleAverages {
	var successCount int
	var avg sampleAverages

	for _, r := range runs {
		if !r.Success {
			continue
		}
		successCount++
		avg.LatencyMs += float64(r.LatencyMs)
		avg.ServerMs += float64(r.ServerMs)
		avg.CalculationMs += float64(r.CalculationMs)
	}

	if successCount == 0 {
		return nil
	}

	n := float64(successCount)
	avg.LatencyMs /= n
	avg.ServerMs /= n
	avg.CalculationMs /= n
	return &avg
}

func printTable(results []sampleResult) {
	fmt.Println(strings.Repeat("─", 70))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Sample\tAvg Latency\tServer\tWords\tHold\n")
	fmt.Fprintf(w, "──────\t───────────\t──────\t─────\t────\n")

	for _, r := range results {
		if r.Averages == nil {
			fmt.Fprintf(w, "%s\tFAILED\t-\t-\t-\n", r.Label)
			continue
		}

		fmt.Fprintf(w, "%s\t%dms\t%dms\t%d\t%.1fs\n",
			r.Label,
			int64(r.Averages.LatencyMs),
			int64(r.Averages.ServerMs),
			r.WordCount,
			r.HoldSeconds,
		)
	}

	w.Flush()
	fmt.Println(strings.Repeat("─", 70))
}

func writeJSON(path string, report benchmarkReport) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
