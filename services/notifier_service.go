// services/notifier_service.go
package services

import (
	"log"
	"os"
	"strings"
	"time"

	"restaurent-app-backend/models"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// NoteNotifier regenerates the supervisor notice board every morning and
// texts each fresh note to the managers of the affected branch.
type NoteNotifier struct {
	db     *gorm.DB
	board  *NoticeBoard
	client *twilio.RestClient
}

func NewNoteNotifier(db *gorm.DB, board *NoticeBoard) *NoteNotifier {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &NoteNotifier{
		db:    db,
		board: board,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

func (s *NoteNotifier) StartScheduler() {
	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", func() {
		s.board.Regenerate()
		s.NotifyBranchManagers()
	})

	c.Start()
	log.Println("Supervisor note scheduler started")
}

func (s *NoteNotifier) NotifyBranchManagers() {
	log.Println("Sending supervisor note notifications...")

	for _, note := range s.board.Notes() {
		var managers []models.User
		err := s.db.Joins("JOIN branches ON branches.id = users.branch_id").
			Where("users.role = ? AND users.is_active = ? AND branches.location = ?",
				models.RoleBranchManager, true, note.Branch).
			Find(&managers).Error
		if err != nil {
			log.Printf("Failed to find managers for %s: %v", note.Branch, err)
			continue
		}

		for _, manager := range managers {
			if manager.Phone == "" {
				continue
			}
			s.sendNote(note, manager.Phone)
		}
	}

	log.Println("Supervisor note notifications done")
}

func (s *NoteNotifier) sendNote(note Note, phone string) {
	// WhatsApp if the number is in E.164 form, plain SMS otherwise
	channel := "sms"
	to := phone
	if strings.HasPrefix(phone, "+") {
		to = "whatsapp:" + phone
		channel = "whatsapp"
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(note.Branch + ": " + note.Message)

	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	resp, err := s.client.Api.CreateMessage(params)
	status := "sent"
	errorMsg := ""

	if err != nil {
		log.Printf("Failed to send note to %s: %v", phone, err)
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		log.Printf("Note sent to %s, SID: %s", phone, *resp.Sid)
	} else {
		log.Printf("Note sent to %s, but no SID returned", phone)
	}

	entry := models.NotificationLog{
		BranchLabel:  note.Branch,
		Message:      note.Message,
		Status:       status,
		ErrorMessage: errorMsg,
		Channel:      channel,
		SentAt:       time.Now(),
	}

	if err := s.db.Create(&entry).Error; err != nil {
		log.Printf("Failed to log notification for %s: %v", note.Branch, err)
	}
}
