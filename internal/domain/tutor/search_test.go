package tutor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func approvedTutor(id, name string, opts ...func(*Tutor)) *Tutor {
	t := &Tutor{
		ID:        id,
		Name:      name,
		Status:    StatusApproved,
		ClassMode: ClassModeBoth,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func TestFilter_ApprovalGate(t *testing.T) {
	tutors := []*Tutor{
		approvedTutor("T1", "Ann"),
		{ID: "T2", Name: "Bob", Status: StatusPending, ClassMode: ClassModeBoth},
		{ID: "T3", Name: "Carl", Status: StatusRejected, ClassMode: ClassModeBoth},
	}

	results := Filter(tutors, FilterCriteria{})

	require.Len(t, results, 1)
	assert.Equal(t, "T1", results[0].ID)

	// The gate holds regardless of any other criteria.
	results = Filter(tutors, FilterCriteria{MinRating: 0, Mode: ""})
	for _, r := range results {
		assert.Equal(t, StatusApproved, r.Status)
	}
}

func TestFilter_SubjectExactMatch(t *testing.T) {
	tutors := []*Tutor{
		approvedTutor("T1", "Ann", func(tt *Tutor) {
			tt.Subjects = []string{"Math"}
			tt.Rating = 4.9
			tt.ReviewCount = 20
			tt.City = "Boston"
			tt.Bio = "algebra expert"
		}),
		{ID: "T2", Name: "Bob", Status: StatusPending, ClassMode: ClassModeBoth,
			Subjects: []string{"Math"}},
	}

	results := Filter(tutors, FilterCriteria{Subject: "Math"})

	require.Len(t, results, 1)
	assert.Equal(t, "T1", results[0].ID)

	// Exact, case-sensitive as stored: "math" does not match "Math".
	assert.Empty(t, Filter(tutors, FilterCriteria{Subject: "math"}))
}

func TestFilter_ModeCompatibility(t *testing.T) {
	online := approvedTutor("T1", "A", func(tt *Tutor) { tt.ClassMode = ClassModeOnline })
	offline := approvedTutor("T2", "B", func(tt *Tutor) { tt.ClassMode = ClassModeOffline })
	both := approvedTutor("T3", "C", func(tt *Tutor) { tt.ClassMode = ClassModeBoth })
	tutors := []*Tutor{online, offline, both}

	tests := []struct {
		name string
		mode ClassMode
		want []string
	}{
		{"online includes both", ClassModeOnline, []string{"T1", "T3"}},
		{"offline includes both", ClassModeOffline, []string{"T2", "T3"}},
		{"both only both", ClassModeBoth, []string{"T3"}},
		{"empty no constraint", "", []string{"T1", "T2", "T3"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			results := Filter(tutors, FilterCriteria{Mode: tc.mode})
			ids := make([]string, 0, len(results))
			for _, r := range results {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tc.want, ids)
		})
	}
}

func TestFilter_CitySubstringCaseInsensitive(t *testing.T) {
	tutors := []*Tutor{
		approvedTutor("T1", "A", func(tt *Tutor) { tt.City = "New York" }),
		approvedTutor("T2", "B", func(tt *Tutor) { tt.City = "Boston" }),
	}

	results := Filter(tutors, FilterCriteria{CityContains: "york"})
	require.Len(t, results, 1)
	assert.Equal(t, "T1", results[0].ID)
}

func TestFilter_PriceAndExperienceBounds(t *testing.T) {
	cheap := approvedTutor("T1", "A", func(tt *Tutor) { tt.HourlyRate = 25; tt.ExperienceYears = 2 })
	mid := approvedTutor("T2", "B", func(tt *Tutor) { tt.HourlyRate = 45; tt.ExperienceYears = 5 })
	pricey := approvedTutor("T3", "C", func(tt *Tutor) { tt.HourlyRate = 60; tt.ExperienceYears = 10 })
	tutors := []*Tutor{cheap, mid, pricey}

	min := 30.0
	max := 50.0
	results := Filter(tutors, FilterCriteria{PriceMin: &min, PriceMax: &max})
	require.Len(t, results, 1)
	assert.Equal(t, "T2", results[0].ID)

	// Inclusive bounds.
	exact := 45.0
	results = Filter(tutors, FilterCriteria{PriceMin: &exact, PriceMax: &exact})
	require.Len(t, results, 1)

	exp := 5
	results = Filter(tutors, FilterCriteria{MinExperience: &exp})
	assert.Len(t, results, 2)
}

func TestParsePrice_NonNumericMeansAbsent(t *testing.T) {
	assert.Nil(t, ParsePrice(""))
	assert.Nil(t, ParsePrice("abc"))
	assert.Nil(t, ParsePrice("-5"))

	v := ParsePrice("42.5")
	require.NotNil(t, v)
	assert.Equal(t, 42.5, *v)
}

func TestParseExperience_NonNumericMeansAbsent(t *testing.T) {
	assert.Nil(t, ParseExperience(""))
	assert.Nil(t, ParseExperience("five"))
	assert.Nil(t, ParseExperience("-1"))

	v := ParseExperience("3")
	require.NotNil(t, v)
	assert.Equal(t, 3, *v)
}

// Adding any criterion can only shrink or preserve the result set.
func TestFilter_ANDSemanticsMonotonic(t *testing.T) {
	tutors := []*Tutor{
		approvedTutor("T1", "A", func(tt *Tutor) {
			tt.Subjects = []string{"Math"}
			tt.City = "Boston"
			tt.Rating = 4.5
		}),
		approvedTutor("T2", "B", func(tt *Tutor) {
			tt.Subjects = []string{"Math", "Physics"}
			tt.City = "Austin"
			tt.Rating = 4.9
		}),
		approvedTutor("T3", "C", func(tt *Tutor) {
			tt.Subjects = []string{"Piano"}
			tt.City = "Boston"
			tt.Rating = 3.5
		}),
	}

	base := Filter(tutors, FilterCriteria{Subject: "Math"})
	narrowed := Filter(tutors, FilterCriteria{Subject: "Math", CityContains: "bos"})

	assert.LessOrEqual(t, len(narrowed), len(base))
	// Every narrowed result satisfies the base criteria too.
	baseIDs := map[string]bool{}
	for _, r := range base {
		baseIDs[r.ID] = true
	}
	for _, r := range narrowed {
		assert.True(t, baseIDs[r.ID])
	}
}

func TestRank_DefaultOrderStable(t *testing.T) {
	a := approvedTutor("T1", "A", func(tt *Tutor) { tt.Rating = 4.5; tt.ReviewCount = 10 })
	b := approvedTutor("T2", "B", func(tt *Tutor) { tt.Rating = 4.9; tt.ReviewCount = 5 })
	c := approvedTutor("T3", "C", func(tt *Tutor) { tt.Rating = 4.5; tt.ReviewCount = 30 })
	// Tied with T1 on both keys: input order must hold.
	d := approvedTutor("T4", "D", func(tt *Tutor) { tt.Rating = 4.5; tt.ReviewCount = 10 })

	results := Rank([]*Tutor{a, b, c, d}, "")

	ids := []string{results[0].ID, results[1].ID, results[2].ID, results[3].ID}
	assert.Equal(t, []string{"T2", "T3", "T1", "T4"}, ids)
}

func TestRank_WhitespaceQueryIsEmpty(t *testing.T) {
	a := approvedTutor("T1", "A", func(tt *Tutor) { tt.Rating = 4.0 })
	b := approvedTutor("T2", "B", func(tt *Tutor) { tt.Rating = 5.0 })

	results := Rank([]*Tutor{a, b}, "   ")

	require.Len(t, results, 2)
	assert.Equal(t, "T2", results[0].ID)
}

func TestRank_DropsNonMatching(t *testing.T) {
	ann := approvedTutor("T1", "Ann", func(tt *Tutor) { tt.Bio = "algebra expert" })
	bob := approvedTutor("T2", "Bob", func(tt *Tutor) {
		tt.Bio = "chemistry"
		tt.Subjects = []string{"Chemistry"}
		tt.City = "Boston"
	})

	results := Rank([]*Tutor{ann, bob}, "ann")

	require.Len(t, results, 1)
	assert.Equal(t, "T1", results[0].ID)
}

func TestScore_NameMatchPriority(t *testing.T) {
	exact := approvedTutor("T1", "Ann")
	prefix := approvedTutor("T2", "Annabel")
	contains := approvedTutor("T3", "Joanna")

	assert.Equal(t, 50, Score(exact, "ann"))
	assert.Equal(t, 30, Score(prefix, "ann"))
	assert.Equal(t, 20, Score(contains, "ann"))
}

func TestScore_SubjectMatchPriority(t *testing.T) {
	exact := approvedTutor("T1", "X", func(tt *Tutor) { tt.Subjects = []string{"Math", "Maths Olympiad"} })
	contains := approvedTutor("T2", "Y", func(tt *Tutor) { tt.Subjects = []string{"Mathematics"} })

	// Exact wins even when another subject only contains the query.
	assert.Equal(t, 40, Score(exact, "math"))
	assert.Equal(t, 25, Score(contains, "math"))
}

func TestScore_AdditiveAcrossCategories(t *testing.T) {
	t1 := approvedTutor("T1", "Ann", func(tt *Tutor) {
		tt.Subjects = []string{"Ann Arbor History"}
		tt.City = "Annapolis"
		tt.Bio = "Taught by Ann herself"
	})

	// name exact (50) + subject contains (25) + city contains (10) + bio contains (5)
	assert.Equal(t, 90, Score(t1, "ann"))
}

func TestScore_Deterministic(t *testing.T) {
	t1 := approvedTutor("T1", "Sarah Jenkins", func(tt *Tutor) {
		tt.Subjects = []string{"Mathematics", "Physics"}
		tt.City = "New York"
		tt.Bio = "PhD student in Physics"
	})

	first := Score(t1, "physics")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Score(t1, "physics"))
	}
}

// Exact name match outranks a bio-only match regardless of other fields.
func TestRank_ExactNameBeatsBioMatch(t *testing.T) {
	ann := approvedTutor("T1", "Ann", func(tt *Tutor) { tt.Rating = 3.0 })
	bioOnly := approvedTutor("T2", "Zed", func(tt *Tutor) {
		tt.Bio = "studied under ann"
		tt.Rating = 5.0
		tt.ReviewCount = 500
	})

	results := Rank([]*Tutor{bioOnly, ann}, "ann")

	require.Len(t, results, 2)
	assert.Equal(t, "T1", results[0].ID)
	assert.Equal(t, "T2", results[1].ID)
}

func TestRank_TieBreakByRatingThenReviews(t *testing.T) {
	// Both score 40 (subject exact).
	a := approvedTutor("T1", "A", func(tt *Tutor) {
		tt.Subjects = []string{"Piano"}
		tt.Rating = 4.5
		tt.ReviewCount = 10
	})
	b := approvedTutor("T2", "B", func(tt *Tutor) {
		tt.Subjects = []string{"Piano"}
		tt.Rating = 4.9
		tt.ReviewCount = 5
	})
	c := approvedTutor("T3", "C", func(tt *Tutor) {
		tt.Subjects = []string{"Piano"}
		tt.Rating = 4.5
		tt.ReviewCount = 20
	})

	results := Rank([]*Tutor{a, b, c}, "piano")

	ids := []string{results[0].ID, results[1].ID, results[2].ID}
	assert.Equal(t, []string{"T2", "T3", "T1"}, ids)
}

func TestReorderByIDs(t *testing.T) {
	a := approvedTutor("T1", "A")
	b := approvedTutor("T2", "B")
	c := approvedTutor("T3", "C")

	// External order wins; unknown ids are silently dropped.
	results := ReorderByIDs([]*Tutor{a, b, c}, []string{"T3", "T404", "T1"})

	require.Len(t, results, 2)
	assert.Equal(t, "T3", results[0].ID)
	assert.Equal(t, "T1", results[1].ID)
}
