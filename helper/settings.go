package helper

import (
	"strconv"

	"github.com/goldDdev/api-dhj-sub000/models"
)

// Settings adalah potret konfigurasi yang dibekukan sekali per request,
// supaya evaluasi tidak membaca nilai yang berubah di tengah jalan.
type Settings struct {
	Radius               float64
	StartTime            string
	CloseTime            string
	OvertimePricePerHour float64
	LatePricePerMinute   float64
	LateTreshold         int
}

func defaultSettings() Settings {
	return Settings{
		Radius:       100,
		StartTime:    "08:00",
		CloseTime:    "17:00",
		LateTreshold: 15,
	}
}

func LoadSettings() Settings {
	cfg := defaultSettings()

	var rows []models.Setting
	if err := models.DB.Find(&rows).Error; err != nil {
		return cfg
	}

	for _, row := range rows {
		switch row.Code {
		case models.SettingRadius:
			if v, err := strconv.ParseFloat(row.Value, 64); err == nil {
				cfg.Radius = v
			}
		case models.SettingStartTime:
			cfg.StartTime = row.Value
		case models.SettingCloseTime:
			cfg.CloseTime = row.Value
		case models.SettingOvertimePricePerHour:
			if v, err := strconv.ParseFloat(row.Value, 64); err == nil {
				cfg.OvertimePricePerHour = v
			}
		case models.SettingLatePricePerMinute:
			if v, err := strconv.ParseFloat(row.Value, 64); err == nil {
				cfg.LatePricePerMinute = v
			}
		case models.SettingLateTreshold:
			if v, err := strconv.Atoi(row.Value); err == nil {
				cfg.LateTreshold = v
			}
		}
	}

	return cfg
}
