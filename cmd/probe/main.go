// Command probe is a smoke-test client for a running CultureSense server.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
)

type ProbeClient struct {
	baseURL string
	client  *http.Client
}

func NewProbeClient(baseURL string) *ProbeClient {
	return &ProbeClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the server")
	testType := flag.String("test", "all", "Test type: all, health, analysis, persona, strategist")
	message := flag.String("message", "How do I plan a culturally relevant campaign?", "Message for the strategist test")
	flag.Parse()

	client := NewProbeClient(*baseURL)

	printHeader("CultureSense - Smoke Tests")
	fmt.Printf("%sBase URL: %s%s\n\n", colorCyan, *baseURL, colorReset)

	switch *testType {
	case "all":
		client.runAllTests(*message)
	case "health":
		client.testHealthCheck()
	case "analysis":
		client.testCrossDomainAnalysis()
	case "persona":
		client.testCulturalPersona()
	case "strategist":
		client.testStrategist(*message)
	default:
		printError(fmt.Sprintf("Unknown test type: %s", *testType))
		fmt.Println("\nAvailable tests: all, health, analysis, persona, strategist")
		os.Exit(1)
	}
}

func (pc *ProbeClient) runAllTests(message string) {
	tests := []struct {
		name string
		fn   func() bool
	}{
		{"Health Check", pc.testHealthCheck},
		{"Cross-Domain Analysis", pc.testCrossDomainAnalysis},
		{"Cultural Persona", pc.testCulturalPersona},
		{"Cultural Strategist", func() bool { return pc.testStrategist(message) }},
	}

	passed := 0
	failed := 0

	for _, test := range tests {
		if test.fn() {
			passed++
		} else {
			failed++
		}
		fmt.Println()
	}

	printHeader("Test Summary")
	fmt.Printf("%sPassed: %d%s\n", colorGreen, passed, colorReset)
	fmt.Printf("%sFailed: %d%s\n", colorRed, failed, colorReset)
	fmt.Printf("Total: %d\n", passed+failed)

	if failed > 0 {
		os.Exit(1)
	}
}

func (pc *ProbeClient) testHealthCheck() bool {
	printTestHeader("Testing Health Check Endpoint")

	url := fmt.Sprintf("%s/health", pc.baseURL)
	fmt.Printf("GET %s\n", url)

	resp, err := pc.client.Get(url)
	if err != nil {
		printError(fmt.Sprintf("Request failed: %v", err))
		return false
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		printError(fmt.Sprintf("Expected status 200, got %d", resp.StatusCode))
		return false
	}

	if string(body) != "OK" {
		printError(fmt.Sprintf("Expected body 'OK', got '%s'", string(body)))
		return false
	}

	printSuccess("Health check passed")
	return true
}

func (pc *ProbeClient) testCrossDomainAnalysis() bool {
	printTestHeader("Testing Cross-Domain Analysis")

	request := map[string]interface{}{
		"domains": []string{"music", "fashion"},
		"preferences": map[string]string{
			"music":   "indie, alternative",
			"fashion": "vintage, sustainable",
		},
	}

	result, ok := pc.post("/api/profile/cross-domain-analysis", request)
	if !ok {
		return false
	}

	for _, key := range []string{"cross_domain_insights", "cultural_segments", "qloo_insights", "qloo_data", "analysis_metadata"} {
		if _, ok := result[key]; !ok {
			printError(fmt.Sprintf("Missing top-level key: %s", key))
			return false
		}
	}

	printSuccess("Cross-domain analysis returned a complete payload")
	return true
}

func (pc *ProbeClient) testCulturalPersona() bool {
	printTestHeader("Testing Cultural Persona")

	request := map[string]interface{}{
		"preferences": map[string]string{
			"music":   "classical, jazz",
			"fashion": "vintage",
			"food":    "korean",
		},
	}

	result, ok := pc.post("/api/profile/cultural-persona", request)
	if !ok {
		return false
	}

	personaType, _ := result["persona_type"].(string)
	if personaType == "" {
		printError("Missing persona_type in response")
		return false
	}

	printSuccess(fmt.Sprintf("Persona generated: %s", personaType))
	return true
}

func (pc *ProbeClient) testStrategist(message string) bool {
	printTestHeader("Testing Cultural Strategist")
	fmt.Printf("%sMessage:%s %s\n\n", colorCyan, colorReset, message)

	request := map[string]interface{}{
		"message":             message,
		"conversationHistory": []map[string]string{},
	}

	result, ok := pc.post("/api/profile/cultural-strategist", request)
	if !ok {
		return false
	}

	response, _ := result["response"].(string)
	if response == "" {
		printError("Missing response text")
		return false
	}

	printSuccess("Strategist replied")
	fmt.Println(strings.Repeat("=", 80))
	fmt.Println(response)
	fmt.Println(strings.Repeat("=", 80))
	return true
}

func (pc *ProbeClient) post(path string, request map[string]interface{}) (map[string]interface{}, bool) {
	url := pc.baseURL + path
	fmt.Printf("POST %s\n", url)

	jsonData, _ := json.MarshalIndent(request, "", "  ")
	fmt.Printf("%sRequest:%s\n%s\n\n", colorYellow, colorReset, string(jsonData))

	resp, err := pc.client.Post(url, "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		printError(fmt.Sprintf("Request failed: %v", err))
		return nil, false
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		printError(fmt.Sprintf("Expected status 200, got %d", resp.StatusCode))
		fmt.Printf("Response: %s\n", string(body))
		return nil, false
	}

	var result map[string]interface{}
	if err := json.Unmarshal(body, &result); err != nil {
		printError(fmt.Sprintf("Invalid JSON response: %v", err))
		return nil, false
	}
	return result, true
}

func printHeader(text string) {
	fmt.Printf("\n%s%s%s\n", colorBlue, strings.Repeat("=", len(text)+4), colorReset)
	fmt.Printf("%s= %s =%s\n", colorBlue, text, colorReset)
	fmt.Printf("%s%s%s\n\n", colorBlue, strings.Repeat("=", len(text)+4), colorReset)
}

func printTestHeader(text string) {
	fmt.Printf("%s[TEST] %s%s\n", colorCyan, text, colorReset)
	fmt.Println(strings.Repeat("-", 80))
}

func printSuccess(text string) {
	fmt.Printf("%s✓ %s%s\n", colorGreen, text, colorReset)
}

func printError(text string) {
	fmt.Printf("%s✗ %s%s\n", colorRed, text, colorReset)
}
