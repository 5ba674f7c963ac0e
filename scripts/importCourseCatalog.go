package main

import (
	"encoding/csv"
	"encoding/json"
	"learnhub/config"
	"learnhub/database"
	"learnhub/models"
	"log"
	"os"
	"strconv"
	"strings"
)

// Bulk loads a course catalog from CourseCatalog.csv. Existing courses are
// matched by title and updated in place; new ones are inserted.
func main() {
	config.LoadConfig()
	database.ConnectDb(config.AppConfig)

	file, err := os.Open("CourseCatalog.csv")
	if err != nil {
		log.Fatalf("Failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	records, err := reader.ReadAll()
	if err != nil {
		log.Fatalf("Failed to read CSV: %v", err)
	}

	if len(records) < 2 {
		log.Fatal("CSV file is empty or has only headers")
	}

	header := records[0]
	log.Printf("CSV Headers: %v", header)
	log.Printf("Total rows to import: %d", len(records)-1)

	headerIndex := make(map[string]int)
	for i, h := range header {
		headerIndex[strings.TrimSpace(h)] = i
	}

	inserted := 0
	updated := 0
	skipped := 0

	for i, row := range records[1:] {
		if i%100 == 0 {
			log.Printf("Processing row %d...", i+1)
		}

		title := getField(row, headerIndex, "title")
		if title == "" {
			skipped++
			continue
		}

		level := strings.ToUpper(getField(row, headerIndex, "level"))
		if level == "" {
			level = "BEGINNER"
		}

		course := models.Course{
			Title:       title,
			Description: getField(row, headerIndex, "description"),
			Thumbnail:   getField(row, headerIndex, "thumbnail"),
			CreatorID:   uint(parseInt(getField(row, headerIndex, "creatorId"))),
			Level:       level,
			Tags:        parseTags(getField(row, headerIndex, "tags")),
			Duration:    parseInt(getField(row, headerIndex, "duration")),
			IsPublished: parseBool(getField(row, headerIndex, "published")),
			IsDeleted:   false,
		}

		var existing models.Course
		result := database.Database.Db.Where("title = ? AND is_deleted = ?", title, false).First(&existing)

		if result.Error != nil {
			if err := database.Database.Db.Create(&course).Error; err != nil {
				log.Printf("Error inserting course %q: %v", title, err)
				continue
			}
			inserted++
		} else {
			existing.Description = course.Description
			existing.Thumbnail = course.Thumbnail
			if course.CreatorID != 0 {
				existing.CreatorID = course.CreatorID
			}
			existing.Level = course.Level
			existing.Tags = course.Tags
			existing.Duration = course.Duration
			existing.IsPublished = course.IsPublished

			if err := database.Database.Db.Save(&existing).Error; err != nil {
				log.Printf("Error updating course %q: %v", title, err)
				continue
			}
			updated++
		}
	}

	log.Printf("=== Import Complete ===")
	log.Printf("Inserted: %d", inserted)
	log.Printf("Updated: %d", updated)
	log.Printf("Skipped: %d", skipped)
	log.Printf("Total processed: %d", inserted+updated+skipped)
}

// getField safely gets a field from the row by header name
func getField(row []string, headerIndex map[string]int, field string) string {
	if idx, ok := headerIndex[field]; ok && idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}

// parseTags splits a pipe-separated tag list into the JSON array the
// courses table stores.
func parseTags(s string) []byte {
	tags := []string{}
	for _, tag := range strings.Split(s, "|") {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	data, err := json.Marshal(tags)
	if err != nil {
		return []byte("[]")
	}
	return data
}

// parseInt converts string to int64
func parseInt(s string) int64 {
	if s == "" {
		return 0
	}
	val, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return val
}

// parseBool treats "true", "yes" and "1" as published
func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "true", "yes", "1":
		return true
	}
	return false
}
