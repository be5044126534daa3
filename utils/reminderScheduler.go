package utils

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"praxis/config"
	"praxis/database"
	courseModels "praxis/models/course"
)

// InitializeReminderScheduler sets up the daily inactivity reminder job
func InitializeReminderScheduler() {
	log.Println("[REMINDER-SCHEDULER] Initializing reminder scheduler...")

	c := cron.New()

	// Run daily at 9 AM to nudge patients with stalled enrollments
	c.AddFunc("0 9 * * *", func() {
		log.Println("[REMINDER-SCHEDULER] Running daily inactivity check...")
		ProcessStalledEnrollments()
	})

	c.Start()
	log.Println("[REMINDER-SCHEDULER] Reminder scheduler started - runs daily at 9 AM")
}

// ProcessStalledEnrollments pushes a reminder to every active enrollment with
// no lesson completion in the configured number of days.
func ProcessStalledEnrollments() {
	db := database.Database.Db
	cutoff := time.Now().AddDate(0, 0, -config.AppConfig.ReminderAfterDays)

	var enrollments []courseModels.Enrollment
	if err := db.
		Where("status = ? AND enrolled_at < ?", courseModels.EnrollmentActive, cutoff).
		Preload("Course").
		Find(&enrollments).Error; err != nil {
		log.Printf("[REMINDER-SCHEDULER] Error fetching active enrollments: %v", err)
		return
	}

	reminded := 0
	for _, enrollment := range enrollments {
		var lastCompletion courseModels.Completion
		err := db.Where("enrollment_id = ?", enrollment.ID).
			Order("created_at desc").First(&lastCompletion).Error
		if err == nil && lastCompletion.CreatedAt.After(cutoff) {
			continue // still active recently
		}

		go SendPush(enrollment.PatientID, "Keep going!",
			"You have lessons waiting in "+enrollment.Course.Title+".")
		reminded++
	}

	log.Printf("[REMINDER-SCHEDULER] Sent %d reminders", reminded)
}
