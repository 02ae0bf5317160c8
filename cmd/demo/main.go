// Command demo fills the configured journal with a week of sample moods.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"tableflip.dev/mindmate/pkg/app"
	"tableflip.dev/mindmate/pkg/mood"
	"tableflip.dev/mindmate/pkg/store"
)

type sample struct {
	daysAgo int
	hour    int
	mood    mood.Mood
	note    string
}

var samples = []sample{
	{6, 9, mood.Calm, "Slow morning with tea."},
	{5, 18, mood.Anxious, "Deadline moved up."},
	{4, 8, mood.Okay, ""},
	{4, 21, mood.Sad, "Missed a call from home."},
	{3, 12, mood.Happy, "Lunch outside with friends."},
	{2, 20, mood.Calm, "Long walk after work."},
	{1, 7, mood.Okay, "Tired but fine."},
	{0, 10, mood.Happy, "Finished the project!"},
}

func main() {
	ctx := context.Background()
	p, err := store.Load(nil)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer p.Close()

	now := time.Now()
	for _, s := range samples {
		at := time.Date(now.Year(), now.Month(), now.Day()-s.daysAgo, s.hour, 0, 0, 0, time.Local)
		svc := app.New(app.Options{Persistence: p, Now: func() time.Time { return at }})
		e, err := svc.Log(ctx, s.mood, s.note)
		if err != nil {
			log.Fatalf("log %s: %v", s.mood, err)
		}
		fmt.Println(e.String())
	}
}
