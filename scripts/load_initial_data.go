package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"club-shifts-backend/internal/config"
	"club-shifts-backend/internal/database"
	"club-shifts-backend/internal/database/models"
	"club-shifts-backend/internal/repository"
	"club-shifts-backend/internal/schedule"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type ClubData struct {
	Name            string                 `yaml:"name"`
	Title           string                 `yaml:"title"`
	Description     string                 `yaml:"description"`
	Timezone        string                 `yaml:"timezone"`
	RotationEnabled *bool                  `yaml:"rotation_enabled,omitempty"`
	CurrentWindow   string                 `yaml:"current_window,omitempty"`
	ShiftWindows    []ShiftWindowData      `yaml:"shift_windows"`
	Metadata        map[string]interface{} `yaml:"metadata,omitempty"`
}

type ShiftWindowData struct {
	Name      string   `yaml:"name"`
	StartTime string   `yaml:"start_time"`
	EndTime   string   `yaml:"end_time"`
	Weekdays  []string `yaml:"weekdays,omitempty"`
	Active    *bool    `yaml:"active,omitempty"`
	Order     int      `yaml:"order"`
	Color     string   `yaml:"color,omitempty"`
}

type clubsFile struct {
	Clubs []ClubData `yaml:"clubs"`
}

func main() {
	log.Println("Loading initial club data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	dataDir := "scripts/data"
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}
	if err := loadDataFromYAMLFiles(db, dataDir); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel:    logger.Silent,
		AutoMigrate: true,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	clubs, err := loadClubs(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load clubs: %w", err)
	}

	configRepo := repository.NewShiftConfigurationRepository(db)

	var clubsCreated, windowsCreated int
	for _, data := range clubs {
		club, created, err := createClub(db, data)
		if err != nil {
			return err
		}
		if created {
			clubsCreated++
		}

		windowsByName := make(map[string]*models.ShiftWindow, len(data.ShiftWindows))
		for _, wd := range data.ShiftWindows {
			window, created, err := createShiftWindow(db, club, wd)
			if err != nil {
				return fmt.Errorf("club %s: %w", club.Name, err)
			}
			if created {
				windowsCreated++
			}
			windowsByName[window.Name] = window
		}

		if err := applyConfiguration(configRepo, club, data, windowsByName); err != nil {
			return fmt.Errorf("club %s: %w", club.Name, err)
		}
	}

	log.Printf("Clubs: %d loaded, %d created", len(clubs), clubsCreated)
	log.Printf("Shift windows: %d created", windowsCreated)
	return nil
}

func loadClubs(dataDir string) ([]ClubData, error) {
	var all []ClubData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !(strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")) {
			return nil
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		var file clubsFile
		if err := yaml.Unmarshal(raw, &file); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		all = append(all, file.Clubs...)
		return nil
	})

	return all, err
}

func createClub(db *gorm.DB, data ClubData) (*models.Club, bool, error) {
	var club models.Club
	err := db.Where("name = ?", data.Name).First(&club).Error
	if err == nil {
		return &club, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query club: %w", err)
	}

	if _, err := schedule.LoadLocation(data.Timezone, time.UTC); err != nil {
		return nil, false, fmt.Errorf("club %s: %w", data.Name, err)
	}

	var metadata json.RawMessage
	if data.Metadata != nil {
		metadata, _ = json.Marshal(data.Metadata)
	}
	club = models.Club{
		Name:        data.Name,
		Title:       data.Title,
		Description: data.Description,
		Timezone:    data.Timezone,
		Metadata:    metadata,
	}
	if err := db.Create(&club).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create club: %w", err)
	}
	return &club, true, nil
}

// createShiftWindow inserts the window unless the club already has one with the same name.
// Times and weekday tokens are checked before anything is written.
func createShiftWindow(db *gorm.DB, club *models.Club, data ShiftWindowData) (*models.ShiftWindow, bool, error) {
	var window models.ShiftWindow
	err := db.Where("club_id = ? AND name = ?", club.ID, data.Name).First(&window).Error
	if err == nil {
		return &window, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query shift window: %w", err)
	}

	start, err := schedule.ParseTimeOfDay("start_time", data.StartTime)
	if err != nil {
		return nil, false, fmt.Errorf("shift window %s: %w", data.Name, err)
	}
	end, err := schedule.ParseTimeOfDay("end_time", data.EndTime)
	if err != nil {
		return nil, false, fmt.Errorf("shift window %s: %w", data.Name, err)
	}

	weekdays := schedule.NewWeekdaySet(schedule.AllWeekdays...)
	if data.Weekdays != nil {
		weekdays, err = schedule.ParseWeekdaySet(data.Weekdays)
		if err != nil {
			return nil, false, fmt.Errorf("shift window %s: %w", data.Name, err)
		}
	}

	active := true
	if data.Active != nil {
		active = *data.Active
	}

	window = models.ShiftWindow{
		ClubID:    club.ID,
		Name:      data.Name,
		StartTime: start.String(),
		EndTime:   end.String(),
		Weekdays:  weekdays,
		Active:    active,
		SortOrder: data.Order,
		Color:     data.Color,
	}
	if err := repository.NewShiftWindowRepository(db).Create(&window); err != nil {
		return nil, false, fmt.Errorf("failed to create shift window: %w", err)
	}
	return &window, true, nil
}

func applyConfiguration(repo repository.ShiftConfigurationRepositoryInterface, club *models.Club, data ClubData, windows map[string]*models.ShiftWindow) error {
	if _, err := repo.GetOrCreate(club.ID); err != nil {
		return fmt.Errorf("failed to create shift configuration: %w", err)
	}
	if data.RotationEnabled != nil {
		if err := repo.SetRotationEnabled(club.ID, *data.RotationEnabled); err != nil {
			return fmt.Errorf("failed to set rotation: %w", err)
		}
	}
	if data.CurrentWindow != "" {
		window, ok := windows[data.CurrentWindow]
		if !ok {
			return fmt.Errorf("current_window %q is not one of the club's shift windows", data.CurrentWindow)
		}
		if err := repo.SetCurrentWindow(club.ID, &window.ID); err != nil {
			return fmt.Errorf("failed to set current window: %w", err)
		}
	}
	return nil
}
