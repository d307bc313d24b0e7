package education

import (
	"testing"

	"github.com/tms-recovery/backend/internal/models"
)

func TestGradeQuiz(t *testing.T) {
	module := ModuleByID("tms-intro")
	if module == nil || module.Quiz == nil {
		t.Fatal("expected tms-intro to carry a quiz")
	}

	tests := []struct {
		name    string
		answers map[string]string
		score   int
		passed  bool
		earned  int
	}{
		{
			name:    "all correct",
			answers: map[string]string{"q1": "1", "q2": "false", "q3": "1"},
			score:   100,
			passed:  true,
			earned:  30,
		},
		{
			name:    "two of three",
			answers: map[string]string{"q1": "1", "q2": "true", "q3": "1"},
			score:   67,
			passed:  false,
			earned:  20,
		},
		{
			name:    "one correct",
			answers: map[string]string{"q1": "0", "q2": "false", "q3": "3"},
			score:   33,
			passed:  false,
			earned:  10,
		},
		{
			name:    "no answers",
			answers: map[string]string{},
			score:   0,
			passed:  false,
			earned:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := gradeQuiz(module, models.QuizSubmission{Answers: tt.answers})
			if result.Score != tt.score {
				t.Errorf("score = %d, want %d", result.Score, tt.score)
			}
			if result.Passed != tt.passed {
				t.Errorf("passed = %v, want %v", result.Passed, tt.passed)
			}
			if result.PointsEarned != tt.earned {
				t.Errorf("points earned = %d, want %d", result.PointsEarned, tt.earned)
			}
			if result.PointsTotal != 30 {
				t.Errorf("points total = %d, want 30", result.PointsTotal)
			}
		})
	}
}

func TestPrerequisiteGating(t *testing.T) {
	mindBody := ModuleByID("mind-body-connection")
	if mindBody == nil {
		t.Fatal("missing mind-body-connection module")
	}

	if prerequisitesMet(*mindBody, nil) {
		t.Error("mind-body-connection should be locked with nothing completed")
	}
	if !prerequisitesMet(*mindBody, []string{"tms-intro"}) {
		t.Error("mind-body-connection should unlock after tms-intro")
	}

	recovery := ModuleByID("recovery-process")
	if prerequisitesMet(*recovery, []string{"tms-intro", "mind-body-connection"}) {
		t.Error("recovery-process should still be locked without emotional-exploration")
	}
	if !prerequisitesMet(*recovery, []string{"tms-intro", "mind-body-connection", "emotional-exploration"}) {
		t.Error("recovery-process should unlock with all prerequisites completed")
	}
}

func TestSummarize(t *testing.T) {
	intro := ModuleByID("tms-intro")

	summary := summarize(*intro, nil)
	if summary.Completed {
		t.Error("tms-intro should not be marked completed")
	}
	if !summary.Unlocked {
		t.Error("tms-intro has no prerequisites and should be unlocked")
	}

	summary = summarize(*intro, []string{"tms-intro"})
	if !summary.Completed {
		t.Error("tms-intro should be marked completed")
	}
}

func TestModulesByCategory(t *testing.T) {
	fundamentals := ModulesByCategory(CategoryFundamentals)
	if len(fundamentals) != 2 {
		t.Errorf("expected 2 fundamentals modules, got %d", len(fundamentals))
	}
	if len(ModulesByCategory("nonexistent")) != 0 {
		t.Error("unknown category should return nothing")
	}
}

func TestCurriculumIntegrity(t *testing.T) {
	if len(Modules) != 5 {
		t.Fatalf("expected 5 modules, got %d", len(Modules))
	}

	seen := map[string]bool{}
	for _, m := range Modules {
		if seen[m.ID] {
			t.Errorf("duplicate module id %s", m.ID)
		}

		// Prerequisites must reference modules that appear earlier.
		for _, prereq := range m.PrerequisiteModules {
			if !seen[prereq] {
				t.Errorf("module %s requires %s before it is defined", m.ID, prereq)
			}
		}
		seen[m.ID] = true

		if len(m.Sections) == 0 {
			t.Errorf("module %s has no sections", m.ID)
		}
		if len(m.KeyTakeaways) == 0 {
			t.Errorf("module %s has no key takeaways", m.ID)
		}

		if m.Quiz != nil {
			if m.Quiz.PassingScore != 70 {
				t.Errorf("module %s passing score = %d, want 70", m.ID, m.Quiz.PassingScore)
			}
			for _, q := range m.Quiz.Questions {
				if q.Points <= 0 {
					t.Errorf("question %s/%s has no points", m.ID, q.ID)
				}
				if q.CorrectAnswer == "" {
					t.Errorf("question %s/%s has no answer", m.ID, q.ID)
				}
			}
		}
	}

	if ModuleByID("missing") != nil {
		t.Error("unknown module id should return nil")
	}
}
