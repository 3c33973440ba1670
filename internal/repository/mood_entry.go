package repository

import (
	"context"
	"time"

	"github.com/JonnyWalker81/wellbeing/backend/internal/logger"
	"github.com/JonnyWalker81/wellbeing/backend/internal/models"
	"github.com/JonnyWalker81/wellbeing/backend/internal/wellbeing"
)

const moodEntriesTable = "mood_entries"

// moodRow is the mood_entries row as stored; mood is free text until parsed
type moodRow struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	Mood           string    `json:"mood"`
	JournalText    *string   `json:"journal_text"`
	CreatedAt      time.Time `json:"created_at"`
	Sentiment      *string   `json:"sentiment"`
	SentimentScore *float64  `json:"sentiment_score"`
	Emotion        *string   `json:"emotion"`
	EmotionScore   *float64  `json:"emotion_score"`
	WellnessTip    *string   `json:"wellness_tip"`
}

type moodRepository struct {
	client Querier
}

// NewMoodRepository creates a mood entry repository
func NewMoodRepository(client Querier) MoodRepository {
	return &moodRepository{client: client}
}

// ListByUser drops rows whose mood is not one of the six labels
func (r *moodRepository) ListByUser(ctx context.Context, userID string, dr wellbeing.DateRange) ([]models.MoodEntry, error) {
	rows, err := fetchAll[moodRow](ctx, r.client, moodEntriesTable, userQuery(userID, dr))
	if err != nil {
		return nil, err
	}

	entries := make([]models.MoodEntry, 0, len(rows))
	for _, row := range rows {
		label, err := models.ParseMoodLabel(row.Mood)
		if err != nil {
			logger.Ctx(ctx).Warn("Dropping mood entry with unknown label",
				logger.String("entry_id", row.ID),
				logger.String("mood", row.Mood),
			)
			continue
		}
		if row.CreatedAt.IsZero() {
			logger.Ctx(ctx).Warn("Dropping mood entry without created_at", logger.String("entry_id", row.ID))
			continue
		}
		entries = append(entries, models.MoodEntry{
			ID:             row.ID,
			UserID:         row.UserID,
			Mood:           label,
			JournalText:    row.JournalText,
			CreatedAt:      row.CreatedAt,
			Sentiment:      row.Sentiment,
			SentimentScore: row.SentimentScore,
			Emotion:        row.Emotion,
			EmotionScore:   row.EmotionScore,
			WellnessTip:    row.WellnessTip,
		})
	}

	return entries, nil
}
