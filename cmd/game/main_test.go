package main

import (
	"os"
	"path/filepath"
	"testing"

	"capybara-sandbox/internal/course"
)

func TestLoadCourseDefaultWithoutSeed(t *testing.T) {
	crs, err := loadCourse("", 0)
	if err != nil {
		t.Fatal(err)
	}
	if crs.Scatter != nil || len(crs.Obstacles) != len(course.Default().Obstacles) {
		t.Fatalf("expected the plain default course, got %+v", crs)
	}
}

func TestLoadCourseSeedAddsScatter(t *testing.T) {
	crs, err := loadCourse("", 42)
	if err != nil {
		t.Fatal(err)
	}
	if crs.Scatter == nil || crs.Scatter.Seed != 42 || crs.Scatter.Count == 0 {
		t.Fatalf("expected seeded scatter, got %+v", crs.Scatter)
	}
}

func TestLoadCourseFileKeepsOwnScatter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "course.yaml")
	data := "name: test\nobstacles:\n  - kind: ground\n    position: [0, -0.1, 0]\n    size: [20, 0.2, 20]\nscatter:\n  count: 3\n  extent: 8\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	crs, err := loadCourse(path, 7)
	if err != nil {
		t.Fatal(err)
	}
	if crs.Name != "test" || crs.Scatter.Count != 3 || crs.Scatter.Seed != 7 {
		t.Fatalf("unexpected course %+v scatter %+v", crs, crs.Scatter)
	}
}

func TestLoadCourseMissingFile(t *testing.T) {
	if _, err := loadCourse(filepath.Join(t.TempDir(), "none.yaml"), 0); err == nil {
		t.Fatalf("expected error")
	}
}
