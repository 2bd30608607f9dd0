package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/findateacher/tutorhub/internal/domain/request"
	"github.com/findateacher/tutorhub/internal/domain/tutor"
	"github.com/findateacher/tutorhub/internal/domain/user"
)

// Seed наполняет репозитории демонстрационным набором данных:
// восемь репетиторов (шесть одобренных, два на модерации), пять
// студентов, администратор и три заявки. Используется при старте
// сервера и в интеграционных тестах.
func Seed(ctx context.Context, tutors *TutorRepository, users *UserRepository, requests *RequestRepository) error {
	now := time.Now()

	for _, t := range seedTutors(now) {
		if err := tutors.Create(ctx, t); err != nil {
			return fmt.Errorf("seed tutor %s: %w", t.ID, err)
		}
	}
	for _, u := range seedUsers(now) {
		if err := users.Create(ctx, u); err != nil {
			return fmt.Errorf("seed user %s: %w", u.ID, err)
		}
	}
	for _, req := range seedRequests(now) {
		if err := requests.Create(ctx, req); err != nil {
			return fmt.Errorf("seed request %s: %w", req.ID, err)
		}
	}
	return nil
}

func seedTutors(now time.Time) []*tutor.Tutor {
	return []*tutor.Tutor{
		{
			ID:       "T-001",
			Name:     "Sarah Jenkins",
			Avatar:   "https://picsum.photos/seed/sarah/200/200",
			Subjects: []string{"Mathematics", "Physics", "Calculus"},
			Levels:   []string{"Class XI", "Class XII", "University"},
			Bio: "PhD student in Physics with 5 years of tutoring experience. " +
				"I specialize in making complex concepts easy to understand for high school and college students.",
			City:            "New York",
			ClassMode:       tutor.ClassModeBoth,
			HourlyRate:      45,
			ExperienceYears: 5,
			Rating:          4.9,
			ReviewCount:     124,
			Reviews: []tutor.Review{
				{ID: "r1", StudentName: "Emily R.", Rating: 5, Comment: "Sarah is incredible! She helped me finally understand Calculus. Highly recommend.", Date: "2023-11-15"},
				{ID: "r2", StudentName: "Jason M.", Rating: 5, Comment: "Very patient and explains things clearly. My grades improved significantly.", Date: "2023-10-02"},
				{ID: "r3", StudentName: "Lisa K.", Rating: 4, Comment: "Great tutor, but sometimes hard to schedule due to high demand.", Date: "2023-09-20"},
			},
			Status:         tutor.StatusApproved,
			IsVerified:     true,
			Availability:   "Weekdays 4PM-9PM",
			Email:          "sarah.j@example.com",
			Phone:          "+1 (555) 123-4567",
			Address:        "123 Main St, New York, NY",
			Qualifications: "PhD Candidate in Physics, BSc in Mathematics",
			CreatedAt:      now,
			UpdatedAt:      now,
		},
		{
			ID:       "T-002",
			Name:     "David Chen",
			Avatar:   "https://picsum.photos/seed/david/200/200",
			Subjects: []string{"English Literature", "History", "Essay Writing"},
			Levels:   []string{"Class VIII", "Class IX", "Class X", "Class XI", "Class XII"},
			Bio: "High school teacher offering private lessons in literature and history. " +
				"I can help with essay writing, critical analysis, and exam preparation.",
			City:            "San Francisco",
			ClassMode:       tutor.ClassModeOffline,
			HourlyRate:      30,
			ExperienceYears: 8,
			Rating:          4.7,
			ReviewCount:     89,
			Reviews: []tutor.Review{
				{ID: "r1", StudentName: "Michael B.", Rating: 5, Comment: "David helped me ace my history paper. His feedback on my essay was invaluable.", Date: "2023-12-01"},
				{ID: "r2", StudentName: "Sarah L.", Rating: 4, Comment: "Good knowledge of literature, very helpful for my AP English class.", Date: "2023-11-10"},
			},
			Status:         tutor.StatusApproved,
			IsVerified:     true,
			Availability:   "Mon-Fri Afternoons",
			Email:          "david.c@example.com",
			Phone:          "+1 (555) 987-6543",
			Address:        "456 Market St, San Francisco, CA",
			Qualifications: "MA in English Literature, BEd",
			CreatedAt:      now,
			UpdatedAt:      now,
		},
		{
			ID:       "T-003",
			Name:     "Emily Rodriguez",
			Avatar:   "https://picsum.photos/seed/emily/200/200",
			Subjects: []string{"Spanish", "French"},
			Levels:   []string{"Class I", "Class II", "Class III", "Class IV", "Class V", "Adult"},
			Bio: "Native Spanish speaker and certified language instructor. " +
				"I believe in immersive learning and conversation-based practice.",
			City:            "Chicago",
			ClassMode:       tutor.ClassModeOnline,
			HourlyRate:      35,
			ExperienceYears: 3,
			Rating:          4.8,
			ReviewCount:     56,
			Reviews: []tutor.Review{
				{ID: "r1", StudentName: "Tom H.", Rating: 5, Comment: "Fun and engaging lessons! I feel much more confident speaking Spanish now.", Date: "2023-10-25"},
			},
			Status:         tutor.StatusApproved,
			IsVerified:     true,
			Availability:   "Flexible",
			Email:          "emily.r@example.com",
			Phone:          "+1 (555) 456-7890",
			Address:        "789 State St, Chicago, IL",
			Qualifications: "BA in Modern Languages",
			CreatedAt:      now,
			UpdatedAt:      now,
		},
		{
			ID:       "T-004",
			Name:     "Michael Ross",
			Avatar:   "https://picsum.photos/seed/michael/200/200",
			Subjects: []string{"Computer Science", "Python", "React", "JavaScript"},
			Levels:   []string{"Class IX", "Class X", "Class XI", "Class XII", "University", "Adult"},
			Bio: "Senior Software Engineer helping students break into tech. " +
				"I teach coding fundamentals, web development, and algorithm prep.",
			City:            "Austin",
			ClassMode:       tutor.ClassModeOnline,
			HourlyRate:      60,
			ExperienceYears: 10,
			Rating:          5.0,
			ReviewCount:     42,
			Reviews: []tutor.Review{
				{ID: "r1", StudentName: "Alex P.", Rating: 5, Comment: "Michael knows his stuff. He helped me prepare for my coding interviews perfectly.", Date: "2024-01-10"},
				{ID: "r2", StudentName: "Jessica W.", Rating: 5, Comment: "Best coding tutor I have found. Explains complex algorithms simply.", Date: "2023-12-15"},
			},
			Status:         tutor.StatusApproved,
			IsVerified:     true,
			Availability:   "Weekends",
			Email:          "mike.ross@example.com",
			Phone:          "+1 (555) 111-2222",
			Address:        "101 Tech Blvd, Austin, TX",
			Qualifications: "MSc in Computer Science",
			CreatedAt:      now,
			UpdatedAt:      now,
		},
		{
			ID:       "T-005",
			Name:     "Jessica Lee",
			Avatar:   "https://picsum.photos/seed/jessica/200/200",
			Subjects: []string{"Piano", "Music Theory"},
			Levels:   []string{"Class I", "Class II", "Class III", "Class IV", "Class V", "Class VI", "Class VII", "Class VIII", "Adult"},
			Bio: "Conservatory-trained pianist. " +
				"I teach all ages, from beginners to advanced students preparing for recitals.",
			City:            "New York",
			ClassMode:       tutor.ClassModeOffline,
			HourlyRate:      50,
			ExperienceYears: 12,
			Rating:          4.9,
			ReviewCount:     78,
			Reviews: []tutor.Review{
				{ID: "r1", StudentName: "Parent of Timmy", Rating: 5, Comment: "My son loves his piano lessons with Jessica. She is so patient.", Date: "2023-11-05"},
			},
			Status:         tutor.StatusApproved,
			IsVerified:     false,
			Availability:   "Tuesday & Thursday",
			Email:          "j.lee@example.com",
			Phone:          "+1 (555) 333-4444",
			Address:        "202 Music Ln, New York, NY",
			Qualifications: "BMus in Piano Performance",
			CreatedAt:      now,
			UpdatedAt:      now,
		},
		{
			ID:       "T-006",
			Name:     "Robert Wilson",
			Avatar:   "https://picsum.photos/seed/robert/200/200",
			Subjects: []string{"Chemistry", "Biology"},
			Levels:   []string{"Class IX", "Class X", "Class XI", "Class XII"},
			Bio: "Retired science teacher passionate about helping students ace their AP and IB exams. " +
				"Patient and detailed oriented.",
			City:            "Boston",
			ClassMode:       tutor.ClassModeBoth,
			HourlyRate:      40,
			ExperienceYears: 25,
			Rating:          4.6,
			ReviewCount:     210,
			Reviews: []tutor.Review{
				{ID: "r1", StudentName: "Chris D.", Rating: 5, Comment: "Robert is a legend. He knows exactly what is on the AP exams.", Date: "2023-05-10"},
				{ID: "r2", StudentName: "Ashley T.", Rating: 4, Comment: "Very detailed explanations, sometimes goes a bit fast but knows his chemistry.", Date: "2023-04-22"},
			},
			Status:         tutor.StatusApproved,
			IsVerified:     true,
			Availability:   "Mornings & Afternoons",
			Email:          "r.wilson@example.com",
			Phone:          "+1 (555) 555-5555",
			Address:        "303 Science Ct, Boston, MA",
			Qualifications: "MEd in Science Education",
			CreatedAt:      now,
			UpdatedAt:      now,
		},
		{
			ID:              "T-007",
			Name:            "Pending Paul",
			Avatar:          "https://picsum.photos/seed/paul/200/200",
			Subjects:        []string{"Geography", "History"},
			Levels:          []string{"Class V", "Class VI", "Class VII"},
			Bio:             "Enthusiastic history major looking to tutor students in world geography and history.",
			City:            "London",
			ClassMode:       tutor.ClassModeOnline,
			HourlyRate:      25,
			ExperienceYears: 1,
			Status:          tutor.StatusPending,
			Availability:    "Weekends only",
			Email:           "paul.pending@example.com",
			Phone:           "+1 (555) 777-8888",
			Address:         "404 History Rd, London, UK",
			Qualifications:  "BA in History",
			CreatedAt:       now,
			UpdatedAt:       now,
		},
		{
			ID:              "T-008",
			Name:            "Alice Applicant",
			Avatar:          "https://picsum.photos/seed/alice/200/200",
			Subjects:        []string{"Art", "Drawing"},
			Levels:          []string{"Class I", "Class II", "Adult"},
			Bio:             "Professional artist offering private drawing lessons for beginners.",
			City:            "Seattle",
			ClassMode:       tutor.ClassModeOffline,
			HourlyRate:      35,
			ExperienceYears: 4,
			Status:          tutor.StatusPending,
			Availability:    "Flexible",
			Email:           "alice.art@example.com",
			Phone:           "+1 (555) 999-0000",
			Address:         "505 Art Ave, Seattle, WA",
			Qualifications:  "BFA in Fine Arts",
			CreatedAt:       now,
			UpdatedAt:       now,
		},
	}
}

func seedUsers(now time.Time) []*user.User {
	return []*user.User{
		{
			ID:       user.AdminID,
			Name:     "Platform Admin",
			Email:    "admin@tutorhub.example.com",
			Role:     user.RoleAdmin,
			Status:   user.StatusActive,
			JoinedAt: now,
		},
		{
			ID:         "S-001",
			Name:       "Alex Mitchell",
			Email:      "alex.m@example.com",
			Avatar:     "https://ui-avatars.com/api/?name=Alex+Mitchell&background=random",
			Role:       user.RoleStudent,
			Status:     user.StatusActive,
			Phone:      "+1 (555) 010-1010",
			Address:    "123 Maple Avenue, New York, NY",
			Gender:     "Male",
			SchoolName: "Lincoln High School",
			Grade:      "Class XII",
			JoinedAt:   time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:         "S-002",
			Name:       "Emma Watson",
			Email:      "emma.w@example.com",
			Avatar:     "https://ui-avatars.com/api/?name=Emma+Watson&background=random",
			Role:       user.RoleStudent,
			Status:     user.StatusActive,
			Phone:      "+1 (555) 020-2020",
			Address:    "456 Oak Lane, San Francisco, CA",
			Gender:     "Female",
			SchoolName: "San Francisco Arts Academy",
			Grade:      "Adult",
			JoinedAt:   time.Date(2023, time.February, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:         "S-003",
			Name:       "Liam Chen",
			Email:      "liam.c@example.com",
			Avatar:     "https://ui-avatars.com/api/?name=Liam+Chen&background=random",
			Role:       user.RoleStudent,
			Status:     user.StatusPending,
			Phone:      "+1 (555) 030-3030",
			Address:    "789 Pine Street, Seattle, WA",
			Gender:     "Male",
			SchoolName: "University of Washington",
			Grade:      "University",
			JoinedAt:   time.Date(2023, time.November, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:         "S-004",
			Name:       "Sophia Rodriguez",
			Email:      "sophia.r@example.com",
			Avatar:     "https://ui-avatars.com/api/?name=Sophia+Rodriguez&background=random",
			Role:       user.RoleStudent,
			Status:     user.StatusSuspended,
			Phone:      "+1 (555) 040-4040",
			Address:    "321 Elm Dr, Austin, TX",
			Gender:     "Female",
			SchoolName: "Austin International School",
			Grade:      "Class X",
			JoinedAt:   time.Date(2023, time.May, 12, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:         "S-005",
			Name:       "Noah Kim",
			Email:      "noah.k@example.com",
			Avatar:     "https://ui-avatars.com/api/?name=Noah+Kim&background=random",
			Role:       user.RoleStudent,
			Status:     user.StatusActive,
			Phone:      "+1 (555) 050-5050",
			Address:    "654 Cedar Blvd, Chicago, IL",
			Gender:     "Male",
			SchoolName: "Northside College Prep",
			Grade:      "Class XI",
			JoinedAt:   time.Date(2023, time.September, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}

func seedRequests(now time.Time) []*request.StudentRequest {
	return []*request.StudentRequest{
		{
			ID:          "req1",
			StudentID:   "S-001",
			StudentName: "Alex Mitchell",
			Avatar:      "https://ui-avatars.com/api/?name=Alex+Mitchell&background=random",
			Subject:     "Physics",
			Level:       "Class XII",
			Mode:        tutor.ClassModeOnline,
			Location:    "New York",
			Description: "Looking for a physics tutor to help with mechanics and thermodynamics for upcoming exams.",
			Budget:      40,
			PostedAt:    now.Add(-48 * time.Hour),
			Status:      request.StatusPending,
		},
		{
			ID:          "req2",
			StudentID:   "S-002",
			StudentName: "Emma Watson",
			Avatar:      "https://ui-avatars.com/api/?name=Emma+Watson&background=random",
			Subject:     "Piano",
			Level:       "Beginner",
			Mode:        tutor.ClassModeOffline,
			Location:    "San Francisco",
			Description: "Adult beginner looking for in-person piano lessons on weekends.",
			Budget:      60,
			PostedAt:    now.Add(-120 * time.Hour),
			Status:      request.StatusMatched,
		},
		{
			ID:          "req3",
			StudentID:   "S-003",
			StudentName: "Liam Chen",
			Avatar:      "https://ui-avatars.com/api/?name=Liam+Chen&background=random",
			Subject:     "Computer Science",
			Level:       "University",
			Mode:        tutor.ClassModeOnline,
			Location:    "Remote",
			Description: "Need help with Data Structures and Algorithms in Python.",
			Budget:      50,
			PostedAt:    now.Add(-1 * time.Hour),
			Status:      request.StatusPending,
		},
	}
}
