// Command probe is a smoke-test harness for a running Aurora QA server: it
// hits the identity and stats endpoints, then asks a set of canned questions.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/karthikyeluripati/aurora-chatbot/internal/models"
)

var testQuestions = []string{
	"When is Layla planning her trip to London?",
	"How many cars does Vikram Desai have?",
	"What are Amira's favorite restaurants?",
	"What is Sophia's phone number?",
	"Which restaurants has Fatima made reservations at?",
	"What cities has Armand Dupont traveled to?",
}

func main() {
	baseURL := flag.String("url", "http://localhost:8001", "base URL of the running server")
	flag.Parse()

	client := &http.Client{Timeout: 60 * time.Second}

	// Completion calls are slow; fail fast if nothing is listening at all.
	if _, err := client.Get(*baseURL + "/health"); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: server is not reachable at %s: %v\n", *baseURL, err)
		os.Exit(1)
	}

	fmt.Println("Testing service info endpoint...")
	getJSON(client, *baseURL+"/")

	fmt.Println("Testing stats endpoint...")
	getJSON(client, *baseURL+"/stats")

	for _, question := range testQuestions {
		fmt.Printf("Question: %s\n", question)
		ask(client, *baseURL, question)
		time.Sleep(time.Second)
	}
}

func getJSON(client *http.Client, url string) {
	resp, err := client.Get(url)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: GET %s: %v\n", url, err)
		return
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	fmt.Printf("Status: %d\nResponse: %s\n\n", resp.StatusCode, indented(body))
}

func ask(client *http.Client, baseURL, question string) {
	payload, _ := json.Marshal(models.AskRequest{Question: question})
	resp, err := client.Post(baseURL+"/ask", "application/json", bytes.NewReader(payload))
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: POST /ask: %v\n", err)
		return
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Status: %d\nError: %s\n\n", resp.StatusCode, body)
		return
	}

	var answer models.AskResponse
	if err := json.Unmarshal(body, &answer); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: decoding answer: %v\n", err)
		return
	}
	fmt.Printf("Answer: %s\n\n", answer.Answer)
}

func indented(body []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, body, "", "  "); err != nil {
		return string(body)
	}
	return buf.String()
}
