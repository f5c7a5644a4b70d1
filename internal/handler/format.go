package handler

import (
	"fmt"
	"strings"
	"time"

	"vocabox/internal/domain"
	"vocabox/internal/service"
	"vocabox/internal/srs"
)

func modeLabel(mode domain.Mode) string {
	if mode.IsPractice() {
		return "🎯 Practice"
	}
	return "📚 Review"
}

func formatNothingDue(mode domain.Mode) string {
	if mode.IsPractice() {
		return "🎯 You have no words yet. Reset your progress to get a starter set."
	}
	return "🎉 Nothing is due right now. Come back later or try practice mode."
}

func formatCardFront(state *domain.StateData) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s · %d/%d\n\n", modeLabel(state.Mode), state.Position, state.Total)
	fmt.Fprintf(&b, "🔤 %s", state.Card.Item.SourceText)
	if !state.Mode.IsPractice() {
		fmt.Fprintf(&b, "\n\nBox %d of %d", state.Card.BucketLevel, srs.MaxLevel)
	}
	return b.String()
}

func formatCardBack(state *domain.StateData) string {
	item := state.Card.Item

	var b strings.Builder
	b.WriteString(formatCardFront(state))
	fmt.Fprintf(&b, "\n\n💡 %s", item.TargetText)
	if item.PartOfSpeech != "" {
		fmt.Fprintf(&b, " (%s)", item.PartOfSpeech)
	}
	if item.HasExample() {
		fmt.Fprintf(&b, "\n📝 %s", item.ExampleSentence)
	}
	b.WriteString("\n\nDid you know it?")
	return b.String()
}

func formatFeedback(card domain.Candidate, result *service.AnswerResult, now time.Time) string {
	mark := "❌"
	if result.Correct {
		mark = "✅"
	}

	line := fmt.Sprintf("%s %s → %s", mark, card.Item.SourceText, card.Item.TargetText)
	if result.NextReviewDue == nil {
		return line
	}

	due := domain.DueDay{Date: *result.NextReviewDue}
	return fmt.Sprintf("%s\nBox %d, next review %s", line, result.NewBucketLevel, due.DisplayString(now))
}

func formatSummary(mode domain.Mode, summary domain.SessionSummary) string {
	return fmt.Sprintf("🏁 %s finished\n\nCorrect: %d of %d\nAccuracy: %d%%",
		modeLabel(mode), summary.Correct, summary.Total, summary.Accuracy)
}

func formatStats(stats domain.Stats) string {
	var b strings.Builder
	b.WriteString("📊 Your progress\n\n")
	fmt.Fprintf(&b, "Words: %d\n", stats.TotalItems)
	fmt.Fprintf(&b, "Due now: %d\n", stats.DueCount)
	fmt.Fprintf(&b, "Reviewed today: %d\n", stats.ReviewedToday)
	fmt.Fprintf(&b, "Accuracy: %d%%\n\n", stats.Accuracy)

	b.WriteString("Boxes:\n")
	for level := srs.MinLevel; level <= srs.MaxLevel; level++ {
		fmt.Fprintf(&b, "%d (every %dd): %d\n", level, srs.Interval(level), stats.Bucket(level))
	}
	return strings.TrimRight(b.String(), "\n")
}

// maxVocabularyLines keeps the word list under the Telegram message limit
const maxVocabularyLines = 50

func formatVocabulary(entries []domain.VocabularyEntry, now time.Time) string {
	if len(entries) == 0 {
		return "📖 You haven't started learning any words yet."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📖 Your words (%d)\n\n", len(entries))
	for i, e := range entries {
		if i == maxVocabularyLines {
			fmt.Fprintf(&b, "\n…and %d more", len(entries)-maxVocabularyLines)
			break
		}

		status := "due now"
		if !e.Due {
			status = domain.DueDay{Date: e.NextReviewDue}.DisplayString(now)
		}
		fmt.Fprintf(&b, "%s → %s · box %d · %d reviews, %d%% · %s\n",
			e.Item.SourceText, e.Item.TargetText, e.BucketLevel, e.ReviewCount, e.Accuracy, status)
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatResetDone(created int) string {
	return fmt.Sprintf("✨ Progress reset. You have %d new words to learn.", created)
}

func formatReminder(due int) string {
	if due == 1 {
		return "⏰ 1 word is waiting for review."
	}
	return fmt.Sprintf("⏰ %d words are waiting for review.", due)
}
