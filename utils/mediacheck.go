package utils

import (
	"log"
	"time"

	"github.com/go-resty/resty/v2"
)

// CheckMediaURL probes a media pointer with a HEAD request and logs
// unreachable URLs. Purely advisory; content writes never block on it.
func CheckMediaURL(url string) {
	if url == "" {
		return
	}

	client := resty.New().SetTimeout(10 * time.Second)
	resp, err := client.R().Head(url)
	if err != nil {
		log.Printf("Media URL check failed for %s: %v", url, err)
		return
	}
	if resp.StatusCode() >= 400 {
		log.Printf("Media URL %s responded with status %d", url, resp.StatusCode())
	}
}
