// Command seed loads agenda fixtures from a YAML file and pushes them
// to a running server through the public API.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"campus-agenda/models"
)

type fixtures struct {
	Events   []eventFixture `yaml:"events"`
	Accounts []struct {
		Name     string `yaml:"name"`
		Email    string `yaml:"email"`
		Password string `yaml:"password"`
	} `yaml:"accounts"`
}

type eventFixture struct {
	Title       string `yaml:"title"`
	Department  string `yaml:"department"`
	Date        string `yaml:"date"`
	Time        string `yaml:"time"`
	Location    string `yaml:"location"`
	ImageURL    string `yaml:"image_url"`
	Description string `yaml:"description"`
}

func main() {
	var (
		file    = flag.String("file", "seed.yaml", "fixtures file")
		baseURL = flag.String("url", "http://localhost:8090", "server base URL")
		token   = flag.String("token", "", "superuser token for event creation")
	)
	flag.Parse()

	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("read fixtures: %v", err)
	}

	var fx fixtures
	if err := yaml.Unmarshal(data, &fx); err != nil {
		log.Fatalf("parse fixtures: %v", err)
	}

	client := &http.Client{Timeout: 10 * time.Second}

	for _, account := range fx.Accounts {
		payload := map[string]string{
			"name":     account.Name,
			"email":    account.Email,
			"password": account.Password,
		}
		if err := post(client, *baseURL+"/api/auth/register", "", payload); err != nil {
			log.Printf("account %s: %v", account.Email, err)
			continue
		}
		log.Printf("account %s created", account.Email)
	}

	for _, ev := range fx.Events {
		payload := models.Event{
			Title:       ev.Title,
			Department:  ev.Department,
			Date:        ev.Date,
			Time:        ev.Time,
			Location:    ev.Location,
			ImageURL:    ev.ImageURL,
			Description: ev.Description,
		}
		if err := post(client, *baseURL+"/api/events", *token, payload); err != nil {
			log.Printf("event %q: %v", ev.Title, err)
			continue
		}
		log.Printf("event %q created", ev.Title)
	}
}

func post(client *http.Client, url, token string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("status %d: %s", resp.StatusCode, msg)
	}
	return nil
}
