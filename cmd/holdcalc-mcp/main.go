package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// calculateRequest mirrors the Holdcalc API request model.
type calculateRequest struct {
	MainText       string `json:"main_text"`
	AdditionalText string `json:"additional_text,omitempty"`
	Exclusions     string `json:"exclusions,omitempty"`
}

// calculateResponse mirrors the Holdcalc API response model.
type calculateResponse struct {
	Success bool `json:"success"`
	Main    struct {
		WordCount          int      `json:"word_count"`
		HoldSeconds        float64  `json:"hold_seconds"`
		RecognitionSeconds float64  `json:"recognition_seconds"`
		TotalSeconds       float64  `json:"total_seconds"`
		Words              []string `json:"words"`
	} `json:"main"`
	Additional *struct {
		WordCount    int      `json:"word_count"`
		TotalSeconds float64  `json:"total_seconds"`
		Words        []string `json:"words"`
	} `json:"additional"`
	Total struct {
		Seconds      float64 `json:"seconds"`
		WholeSeconds int     `json:"whole_seconds"`
		Frames       int     `json:"frames"`
	} `json:"total"`
	Tips []struct {
		Kind    string `json:"kind"`
		Message string `json:"message"`
	} `json:"tips"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func main() {
	apiURL := os.Getenv("HOLDCALC_API_URL")
	if apiURL == "" {
		apiURL = "http://127.0.0.1:8080"
	}
	apiKey := os.Getenv("HOLDCALC_API_KEY")

	s := server.NewMCPServer(
		"holdcalc",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	calculateTool := mcp.NewTool("calculate_duration",
		mcp.WithDescription("Calculate how long a regulatory disclaimer must be held on screen under UK advertising-clearance conventions. Returns the unique countable word list, per-block durations, and the combined total in seconds and frames."),
		mcp.WithString("main_text",
			mcp.Required(),
			mcp.Description("The main disclaimer text"),
		),
		mcp.WithString("additional_text",
			mcp.Description("Additional text displayed at a different time while the disclaimer is held; words already counted in the main text are not counted again"),
		),
		mcp.WithString("exclusions",
			mcp.Description("Comma-separated brand names to exclude from the word count, e.g. 'Nike, Adidas'"),
		),
	)

	batchTool := mcp.NewTool("batch_calculate",
		mcp.WithDescription("Calculate hold durations for several disclaimers in one call. Accepts a JSON array of items with main_text, optional additional_text and exclusions; waits for the batch to finish and returns every result."),
		mcp.WithString("items",
			mcp.Required(),
			mcp.Description(`JSON array of calculation items, e.g. [{"main_text":"T&Cs apply"},{"main_text":"18+ only","exclusions":"Nike"}]`),
		),
	)

	s.AddTool(calculateTool, handleCalculate(apiURL, apiKey))
	s.AddTool(batchTool, handleBatch(apiURL, apiKey))

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}

func handleCalculate(apiURL, apiKey string) server.ToolHandlerFunc {
	client := &http.Client{Timeout: 30 * time.Second}

	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		mainText, err := request.RequireString("main_text")
		if err != nil {
			return mcp.NewToolResultError("main_text is required"), nil
		}

		reqBody := calculateRequest{
			MainText:       mainText,
			AdditionalText: request.GetString("additional_text", ""),
			Exclusions:     request.GetString("exclusions", ""),
		}

		body, err := json.Marshal(reqBody)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to marshal request: %v", err)), nil
		}

		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL+"/api/v1/calculate", bytes.NewReader(body))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to create request: %v", err)), nil
		}
		httpReq.Header.Set("Content-Type", "application/json")
		if apiKey != "" {
			httpReq.Header.Set("X-API-Key", apiKey)
		}

		resp, err := client.Do(httpReq)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("API request failed: %v", err)), nil
		}
		defer resp.Body.Close()

		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to read response: %v", err)), nil
		}

		var calcResp calculateResponse
		if err := json.Unmarshal(respBody, &calcResp); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to parse response: %v", err)), nil
		}

		if !calcResp.Success {
			errMsg := "calculation failed"
			if calcResp.Error != nil {
				errMsg = fmt.Sprintf("[%s] %s", calcResp.Error.Code, calcResp.Error.Message)
			}
			return mcp.NewToolResultError(errMsg), nil
		}

		return mcp.NewToolResultText(formatResult(&calcResp)), nil
	}
}

// batchStatusResponse mirrors the Holdcalc batch status model.
type batchStatusResponse struct {
	ID        string               `json:"id"`
	Status    string               `json:"status"`
	Completed int                  `json:"completed"`
	Total     int                  `json:"total"`
	Results   []*calculateResponse `json:"results"`
}

func handleBatch(apiURL, apiKey string) server.ToolHandlerFunc {
	client := &http.Client{Timeout: 30 * time.Second}

	doJSON := func(ctx context.Context, method, url string, body []byte, out any) error {
		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, url, reader)
		if err != nil {
			return err
		}
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if apiKey != "" {
			req.Header.Set("X-API-Key", apiKey)
		}
		resp, err := client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		return json.NewDecoder(resp.Body).Decode(out)
	}

	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		itemsJSON, err := request.RequireString("items")
		if err != nil {
			return mcp.NewToolResultError("items is required"), nil
		}

		var items []calculateRequest
		if err := json.Unmarshal([]byte(itemsJSON), &items); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("items must be a JSON array of calculation items: %v", err)), nil
		}
		if len(items) == 0 {
			return mcp.NewToolResultError("items must contain at least one calculation"), nil
		}

		body, err := json.Marshal(map[string]any{"items": items})
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to marshal request: %v", err)), nil
		}

		var started struct {
			ID string `json:"id"`
		}
		if err := doJSON(ctx, http.MethodPost, apiURL+"/api/v1/batch/calculate", body, &started); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("batch request failed: %v", err)), nil
		}
		if started.ID == "" {
			return mcp.NewToolResultError("batch request was rejected by the API"), nil
		}

		// Poll until the job leaves the processing state.
		var status batchStatusResponse
		for {
			select {
			case <-ctx.Done():
				return mcp.NewToolResultError(fmt.Sprintf("cancelled while waiting for batch %s", started.ID)), nil
			case <-time.After(500 * time.Millisecond):
			}

			if err := doJSON(ctx, http.MethodGet, apiURL+"/api/v1/batch/"+started.ID, nil, &status); err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("batch status failed: %v", err)), nil
			}
			if status.Status != "processing" {
				break
			}
		}

		var b strings.Builder
		fmt.Fprintf(&b, "Batch %s: %s (%d/%d items)\n", status.ID, status.Status, status.Completed, status.Total)
		for i, r := range status.Results {
			fmt.Fprintf(&b, "\n--- Item %d ---\n", i+1)
			if r == nil {
				b.WriteString("no result\n")
				continue
			}
			if !r.Success {
				if r.Error != nil {
					fmt.Fprintf(&b, "failed: [%s] %s\n", r.Error.Code, r.Error.Message)
				} else {
					b.WriteString("failed\n")
				}
				continue
			}
			b.WriteString(formatResult(r))
		}
		return mcp.NewToolResultText(b.String()), nil
	}
}

// formatResult renders the API response as readable text for the tool caller.
func formatResult(r *calculateResponse) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Total hold duration: %.1fs (%d seconds and %d frames)\n\n",
		r.Total.Seconds, r.Total.WholeSeconds, r.Total.Frames)

	fmt.Fprintf(&b, "Main disclaimer: %.1fs\n", r.Main.TotalSeconds)
	fmt.Fprintf(&b, "- Unique words: %d\n", r.Main.WordCount)
	fmt.Fprintf(&b, "- Text hold: %.1fs, recognition: %.1fs\n", r.Main.HoldSeconds, r.Main.RecognitionSeconds)
	fmt.Fprintf(&b, "- Countable words: %s\n", strings.Join(r.Main.Words, ", "))

	if r.Additional != nil {
		fmt.Fprintf(&b, "\nAdditional text: %.1fs\n", r.Additional.TotalSeconds)
		fmt.Fprintf(&b, "- New unique words: %d\n", r.Additional.WordCount)
		fmt.Fprintf(&b, "- Countable words: %s\n", strings.Join(r.Additional.Words, ", "))
	}

	if len(r.Tips) > 0 {
		b.WriteString("\nOptimization tips:\n")
		for _, tip := range r.Tips {
			fmt.Fprintf(&b, "- %s\n", tip.Message)
		}
	}

	return b.String()
}
