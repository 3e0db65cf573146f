package benchmark

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"sync"
	"time"
)

// APIBenchmark drives concurrent requests against a running server
type APIBenchmark struct {
	BaseURL     string
	Concurrency int
	Requests    int
	AuthToken   string
	Client      *http.Client
}

// BenchmarkResult summarizes one endpoint run
type BenchmarkResult struct {
	URL            string        `json:"url"`
	Method         string        `json:"method"`
	Concurrency    int           `json:"concurrency"`
	TotalRequests  int           `json:"total_requests"`
	SuccessCount   int           `json:"success_count"`
	FailureCount   int           `json:"failure_count"`
	TotalTime      time.Duration `json:"total_time"`
	AverageTime    time.Duration `json:"average_time"`
	MinTime        time.Duration `json:"min_time"`
	MaxTime        time.Duration `json:"max_time"`
	RequestsPerSec float64       `json:"requests_per_sec"`
	StatusCodes    map[int]int   `json:"status_codes"`
	Errors         []string      `json:"errors"`
}

// RequestResult is the outcome of a single request
type RequestResult struct {
	Duration   time.Duration
	StatusCode int
	Error      error
}

// NewAPIBenchmark creates a benchmark runner
func NewAPIBenchmark(baseURL string, concurrency, requests int, authToken string) *APIBenchmark {
	return &APIBenchmark{
		BaseURL:     baseURL,
		Concurrency: concurrency,
		Requests:    requests,
		AuthToken:   authToken,
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// RunGET benchmarks a GET endpoint
func (b *APIBenchmark) RunGET(path string) *BenchmarkResult {
	return b.runTest(http.MethodGet, b.BaseURL+path, func(int) []byte { return nil })
}

// RunPOST benchmarks a POST endpoint. payload is called once per request so
// each request can carry a distinct body.
func (b *APIBenchmark) RunPOST(path string, payload func(i int) interface{}) *BenchmarkResult {
	return b.runJSON(http.MethodPost, path, payload)
}

// RunPUT benchmarks a PUT endpoint
func (b *APIBenchmark) RunPUT(path string, payload func(i int) interface{}) *BenchmarkResult {
	return b.runJSON(http.MethodPut, path, payload)
}

func (b *APIBenchmark) runJSON(method, path string, payload func(i int) interface{}) *BenchmarkResult {
	url := b.BaseURL + path
	bodies := make([][]byte, b.Requests)
	for i := range bodies {
		data, err := json.Marshal(payload(i))
		if err != nil {
			return &BenchmarkResult{URL: url, Method: method, Errors: []string{fmt.Sprintf("encode payload: %v", err)}}
		}
		bodies[i] = data
	}
	return b.runTest(method, url, func(i int) []byte { return bodies[i] })
}

// Do sends one request and decodes the JSON response into out
func (b *APIBenchmark) Do(method, path string, payload, out interface{}) (int, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return 0, err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, b.BaseURL+path, body)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	if b.AuthToken != "" {
		req.Header.Set("Authorization", "Bearer "+b.AuthToken)
	}

	resp, err := b.Client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, fmt.Errorf("decode response: %w", err)
		}
	}
	return resp.StatusCode, nil
}

func (b *APIBenchmark) runTest(method, url string, payload func(i int) []byte) *BenchmarkResult {
	results := make(chan RequestResult, b.Requests)
	var wg sync.WaitGroup
	limiter := make(chan struct{}, b.Concurrency)

	startTime := time.Now()

	for i := 0; i < b.Requests; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			limiter <- struct{}{}
			defer func() { <-limiter }()

			start := time.Now()
			req, err := http.NewRequest(method, url, bytes.NewReader(payload(i)))
			if err != nil {
				results <- RequestResult{Error: err}
				return
			}

			req.Header.Set("Content-Type", "application/json")
			if b.AuthToken != "" {
				req.Header.Set("Authorization", "Bearer "+b.AuthToken)
			}

			resp, err := b.Client.Do(req)
			if err != nil {
				results <- RequestResult{Error: err}
				return
			}
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()

			results <- RequestResult{
				Duration:   time.Since(start),
				StatusCode: resp.StatusCode,
			}
		}(i)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var minTime time.Duration = 1<<63 - 1
	var maxTime time.Duration
	var totalTime time.Duration
	successCount := 0
	failureCount := 0
	statusCodes := make(map[int]int)
	var errs []string

	for result := range results {
		if result.Error != nil {
			failureCount++
			errs = append(errs, result.Error.Error())
			continue
		}

		totalTime += result.Duration
		if result.Duration < minTime {
			minTime = result.Duration
		}
		if result.Duration > maxTime {
			maxTime = result.Duration
		}

		statusCodes[result.StatusCode]++
		if result.StatusCode >= 200 && result.StatusCode < 300 {
			successCount++
		} else {
			failureCount++
		}
	}

	totalElapsed := time.Since(startTime)
	averageTime := time.Duration(0)
	if successCount+failureCount > 0 {
		averageTime = totalTime / time.Duration(successCount+failureCount)
	}

	return &BenchmarkResult{
		URL:            url,
		Method:         method,
		Concurrency:    b.Concurrency,
		TotalRequests:  b.Requests,
		SuccessCount:   successCount,
		FailureCount:   failureCount,
		TotalTime:      totalElapsed,
		AverageTime:    averageTime,
		MinTime:        minTime,
		MaxTime:        maxTime,
		RequestsPerSec: float64(b.Requests) / totalElapsed.Seconds(),
		StatusCodes:    statusCodes,
		Errors:         errs,
	}
}

// PrintResult writes a human-readable summary
func (r *BenchmarkResult) PrintResult(w io.Writer) {
	fmt.Fprintf(w, "%s %s: %d/%d ok, concurrency %d\n", r.Method, r.URL, r.SuccessCount, r.TotalRequests, r.Concurrency)
	fmt.Fprintf(w, "  total %s, avg %s, min %s, max %s, %.2f req/s\n",
		r.TotalTime, r.AverageTime, r.MinTime, r.MaxTime, r.RequestsPerSec)

	codes := make([]int, 0, len(r.StatusCodes))
	for code := range r.StatusCodes {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	for _, code := range codes {
		fmt.Fprintf(w, "  status %d: %d\n", code, r.StatusCodes[code])
	}
	for i, err := range r.Errors {
		if i >= 5 {
			fmt.Fprintf(w, "  ... %d more errors\n", len(r.Errors)-5)
			break
		}
		fmt.Fprintf(w, "  error: %s\n", err)
	}
}
