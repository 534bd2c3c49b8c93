package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

// The admin CLI is the municipal authority's surface: the only way a
// complaint leaves the "pending" state, and the removal path that does not
// require ownership. It talks to the running server over the admin API
// because the complaint store is process-local.

func main() {
	apiURL := os.Getenv("API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8080"
	}
	adminToken := os.Getenv("ADMIN_TOKEN")
	if adminToken == "" {
		log.Fatal("ADMIN_TOKEN is not set")
	}

	if len(os.Args) < 2 {
		fmt.Println("Usage: admin <command> [args]")
		os.Exit(1)
	}

	client := &http.Client{Timeout: 10 * time.Second}
	command := os.Args[1]

	switch command {
	case "set-status":
		if len(os.Args) != 4 {
			fmt.Println("Usage: admin set-status <complaint_id> <pending|in-progress|resolved|rejected>")
			os.Exit(1)
		}
		complaintID := os.Args[2]
		status := os.Args[3]
		if err := setStatus(client, apiURL, adminToken, complaintID, status); err != nil {
			log.Fatalf("Error setting status: %v", err)
		}
		fmt.Printf("Complaint %s is now %s.\n", complaintID, status)
	case "delete":
		if len(os.Args) != 3 {
			fmt.Println("Usage: admin delete <complaint_id>")
			os.Exit(1)
		}
		complaintID := os.Args[2]
		if err := deleteComplaint(client, apiURL, adminToken, complaintID); err != nil {
			log.Fatalf("Error deleting complaint: %v", err)
		}
		fmt.Printf("Complaint %s has been deleted.\n", complaintID)
	default:
		fmt.Println("Unknown command")
		os.Exit(1)
	}
}

func setStatus(client *http.Client, apiURL, adminToken, complaintID, status string) error {
	body, err := json.Marshal(map[string]string{"status": status})
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPatch, apiURL+"/admin/complaints/"+complaintID+"/status", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Admin-Token", adminToken)

	return expectStatus(client, req, http.StatusOK)
}

func deleteComplaint(client *http.Client, apiURL, adminToken, complaintID string) error {
	req, err := http.NewRequest(http.MethodDelete, apiURL+"/admin/complaints/"+complaintID, nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-Admin-Token", adminToken)

	return expectStatus(client, req, http.StatusNoContent)
}

func expectStatus(client *http.Client, req *http.Request, want int) error {
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != want {
		payload, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server returned %s: %s", resp.Status, payload)
	}
	return nil
}
