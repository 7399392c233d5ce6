package helper

import (
	"fmt"
	"strconv"
	"strings"
)

func TimeToMinutes(timeStr string) int {
	parts := strings.Split(timeStr, ":")
	if len(parts) < 2 {
		return 0
	}
	hours, _ := strconv.Atoi(parts[0])
	minutes, _ := strconv.Atoi(parts[1])
	return hours*60 + minutes
}

func MinutesToTime(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	hours := (minutes / 60) % 24
	mins := minutes % 60
	return fmt.Sprintf("%02d:%02d", hours, mins)
}
