package renderer

import (
	"testing"
)

func TestRowTasks_PartitionEveryRowOnce(t *testing.T) {
	tests := []struct {
		workers int
		height  int
	}{
		{1, 1},
		{1, 10},
		{3, 10},
		{8, 8},
		{8, 100},
		{7, 3},
	}

	for _, tt := range tests {
		tasks := newRowTasks(tt.workers, 5, tt.height)

		owners := make([]int, tt.height)
		totalRows := 0
		for _, task := range tasks {
			count := 0
			for y := task.id; y < task.height; y += task.stride {
				owners[y]++
				count++
			}
			if count != task.rows() {
				t.Errorf("workers=%d height=%d: task %d counted %d rows, rows() = %d",
					tt.workers, tt.height, task.id, count, task.rows())
			}
			totalRows += task.rows()
		}

		for y, owned := range owners {
			if owned != 1 {
				t.Errorf("workers=%d height=%d: row %d owned %d times", tt.workers, tt.height, y, owned)
			}
		}
		if totalRows != tt.height {
			t.Errorf("workers=%d height=%d: expected %d rows in total, got %d", tt.workers, tt.height, tt.height, totalRows)
		}
	}
}

func TestProgress_Aggregates(t *testing.T) {
	tasks := newRowTasks(2, 4, 4)
	tasks[0].pixelsDone.Store(8)
	tasks[0].done.Store(true)
	tasks[1].pixelsDone.Store(2)

	p := progress(tasks, 16)
	if p.PixelsDone != 10 || p.TasksDone != 1 || p.Tasks != 2 {
		t.Errorf("Unexpected progress %+v", p)
	}
	if p.Percent != 62.5 {
		t.Errorf("Expected 62.5%%, got %v", p.Percent)
	}

	if empty := progress(nil, 0); empty.Percent != 0 {
		t.Errorf("Expected 0%% for an empty render, got %v", empty.Percent)
	}
}

func TestBackground_Gradient(t *testing.T) {
	c := Background(0, 0, 4, 2)
	if c.X != 1 || c.Y != 1 || c.Z != 0 {
		t.Errorf("top-left background = %v, want (1, 1, 0)", c)
	}
	c = Background(2, 1, 4, 2)
	if c.X != 0.5 || c.Y != 0.5 || c.Z != 0 {
		t.Errorf("background(2, 1) = %v, want (0.5, 0.5, 0)", c)
	}
}
