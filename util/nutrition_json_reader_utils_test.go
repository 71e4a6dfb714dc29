package util

import (
	"os"
	"testing"
)

func createTempFile(t *testing.T, content string) string {
	t.Helper()
	tempFile, err := os.CreateTemp("", "test*.json")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	_, err = tempFile.Write([]byte(content))
	if err != nil {
		t.Fatalf("Failed to write to temp file: %v", err)
	}
	tempFile.Close()
	return tempFile.Name()
}

func TestReadWeeklyNutritionFromJSON(t *testing.T) {
	// Arrange
	content := `[
		{"calories": 2000, "protein": 120, "carbohydrates": 220, "fat": 70},
		{"calories": 1800, "protein": 100, "carbohydrates": 200, "fat": 60}
	]`
	tempFile := createTempFile(t, content)
	defer os.Remove(tempFile)

	// Act
	days, err := ReadWeeklyNutritionFromJSON(tempFile)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(days) != 2 {
		t.Fatalf("Expected 2 days, got %d", len(days))
	}
	if days[0].Calories != 2000 {
		t.Errorf("Expected Calories 2000, got %f", days[0].Calories)
	}
	if days[1].Fat != 60 {
		t.Errorf("Expected Fat 60, got %f", days[1].Fat)
	}
}

func TestReadRecipesFromJSON(t *testing.T) {
	// Arrange
	content := `[{"name": "chicken stir fry", "nutrition": {"calories": 650, "protein": 45, "carbohydrates": 60, "fat": 20}}]`
	tempFile := createTempFile(t, content)
	defer os.Remove(tempFile)

	// Act
	recipes, err := ReadRecipesFromJSON(tempFile)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(recipes) != 1 {
		t.Fatalf("Expected 1 recipe, got %d", len(recipes))
	}
	if recipes[0].Name != "chicken stir fry" {
		t.Errorf("Expected Name 'chicken stir fry', got %s", recipes[0].Name)
	}
	if recipes[0].Nutrition.Protein != 45 {
		t.Errorf("Expected Protein 45, got %f", recipes[0].Nutrition.Protein)
	}
}

func TestReadRecipesFromJSON_Malformed(t *testing.T) {
	tempFile := createTempFile(t, `{"invalid_json`)
	defer os.Remove(tempFile)

	if _, err := ReadRecipesFromJSON(tempFile); err == nil {
		t.Errorf("Expected an error, got nil")
	}
}

func TestReadWeeklyNutritionFromJSON_MissingFile(t *testing.T) {
	if _, err := ReadWeeklyNutritionFromJSON("does-not-exist.json"); err == nil {
		t.Errorf("Expected an error, got nil")
	}
}
