package helper

import (
	"bytes"
	"fmt"

	"github.com/goldDdev/api-dhj-sub000/models"

	"github.com/sjwhitworth/golearn/base"
	"github.com/sjwhitworth/golearn/linear_models"
)

// PredictCloseTime memperkirakan jam pulang dari histori absensi
// dengan regresi linear jam_masuk -> jam_pulang.
func PredictCloseTime(history [][2]string, newComeTime string) (string, error) {
	if len(history) == 0 {
		return "", fmt.Errorf("no training data available")
	}

	var csvBuffer bytes.Buffer
	csvBuffer.WriteString("close_minutes,come_minutes\n")

	for _, record := range history {
		comeMinutes := TimeToMinutes(record[0])
		closeMinutes := TimeToMinutes(record[1])
		csvBuffer.WriteString(fmt.Sprintf("%d,%d\n", closeMinutes, comeMinutes))
	}

	instances, err := base.ParseCSVToInstances(csvBuffer.String(), true)
	if err != nil {
		return "", fmt.Errorf("failed to parse training data: %w", err)
	}

	model := linear_models.NewLinearRegression()
	if err := model.Fit(instances); err != nil {
		return "", fmt.Errorf("failed to train model: %w", err)
	}

	newComeMinutes := TimeToMinutes(newComeTime)
	predCSV := fmt.Sprintf("close_minutes,come_minutes\n0,%d\n", newComeMinutes)

	predInstances, err := base.ParseCSVToInstances(predCSV, true)
	if err != nil {
		return "", fmt.Errorf("failed to parse prediction data: %w", err)
	}

	predictions, err := model.Predict(predInstances)
	if err != nil {
		return "", fmt.Errorf("prediction failed: %w", err)
	}

	classAttrs := predictions.AllClassAttributes()
	if len(classAttrs) == 0 {
		return "", fmt.Errorf("no class attribute in predictions")
	}

	classSpec := base.ResolveAttributes(predictions, classAttrs)[0]
	predictedBytes := predictions.Get(classSpec, 0)
	predictedMinutes := base.UnpackBytesToFloat(predictedBytes)

	return MinutesToTime(int(predictedMinutes)), nil
}

// GetTrainingDataForEmployee mengambil 10 absensi terakhir yang sudah
// punya jam pulang sebagai data latih.
func GetTrainingDataForEmployee(employeeID int64) ([][2]string, error) {
	var recent []models.ProjectAbsent

	err := models.DB.Where(
		"employee_id = ? AND come_at IS NOT NULL AND close_at IS NOT NULL",
		employeeID,
	).Order("id desc").Limit(10).Find(&recent).Error

	if err != nil {
		return nil, err
	}

	var historyData [][2]string
	for _, absent := range recent {
		if absent.ComeAt != nil && absent.CloseAt != nil {
			historyData = append(historyData, [2]string{*absent.ComeAt, *absent.CloseAt})
		}
	}

	return historyData, nil
}
