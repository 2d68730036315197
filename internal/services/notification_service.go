package services

import (
	"context"
	"log"
	"sync"
	"time"

	dbm "github.com/Aryan1591/TravelBuddy-Notification-Service/internal/models/db_models"
	"github.com/Aryan1591/TravelBuddy-Notification-Service/internal/repositories"
	"github.com/Aryan1591/TravelBuddy-Notification-Service/pkg/utils"
)

type NotificationServiceInterface interface {
	// FetchPostsAndUpdate runs one notification pass: every post is
	// re-evaluated against the lifecycle rules and the resulting
	// transitions and reminder fan-outs are issued. It returns once
	// every evaluation has finished and every reminder is enqueued;
	// actual delivery is asynchronous.
	FetchPostsAndUpdate(ctx context.Context) error
}

type NotificationService struct {
	postRepo   repositories.PostRepository
	postStatus PostStatusClient
	directory  UserDirectoryClient
	dispatcher MailDispatcher
	loc        *time.Location
	now        func() time.Time
}

func NewNotificationService(
	postRepo repositories.PostRepository,
	postStatus PostStatusClient,
	directory UserDirectoryClient,
	dispatcher MailDispatcher,
	loc *time.Location,
) NotificationServiceInterface {
	return &NotificationService{
		postRepo:   postRepo,
		postStatus: postStatus,
		directory:  directory,
		dispatcher: dispatcher,
		loc:        loc,
		now:        time.Now,
	}
}

func (n *NotificationService) FetchPostsAndUpdate(ctx context.Context) error {
	log.Println("Fetching post data for notification pass")

	posts, err := n.postRepo.GetAllPosts(ctx)
	if err != nil {
		log.Printf("Failed to fetch posts: %v", err)
		return utils.ErrDatabaseError
	}

	var wg sync.WaitGroup
	for i := range posts {
		wg.Add(1)
		go func(post *dbm.Post) {
			defer wg.Done()
			n.evaluatePost(ctx, post)
		}(&posts[i])
	}
	wg.Wait()

	log.Printf("Notification pass finished, %d posts evaluated", len(posts))
	return nil
}

// evaluatePost applies the lifecycle rules to one post, first match wins:
//
//  1. ACTIVE and starting within the next 24 hours (inclusive bounds):
//     lock the post and fan out reminders.
//  2. End date before today: mark the post inactive, whatever its
//     current status. The transition is idempotent on the post service,
//     so re-submitting for an already-inactive post is harmless.
//  3. Otherwise nothing to do.
//
// A malformed date aborts this post's evaluation with no side effects;
// it never aborts the pass.
func (n *NotificationService) evaluatePost(ctx context.Context, post *dbm.Post) {
	now := n.now().In(n.loc)

	start, err := utils.ParseTripDate(post.StartDate, n.loc)
	if err != nil {
		log.Printf("Post ID: %s has malformed start date %q, skipping: %v", post.ID, post.StartDate, err)
		return
	}
	end, err := utils.ParseTripDate(post.EndDate, n.loc)
	if err != nil {
		log.Printf("Post ID: %s has malformed end date %q, skipping: %v", post.ID, post.EndDate, err)
		return
	}

	switch {
	case post.Status == dbm.StatusActive && utils.WithinReminderWindow(start, now):
		log.Printf("Post ID: %s is within 24 hours. Triggering sendTripReminder.", post.ID)
		// Fire-and-continue: the reminder goes out from the in-memory
		// snapshot whether or not the lock transition lands. Until the
		// store observes LOCKED, a repeated pass inside the window will
		// remind again.
		if err := n.postStatus.UpdateStatusToLocked(ctx, post.ID); err != nil {
			log.Printf("Failed to update status to LOCKED for post ID: %s: %v", post.ID, err)
		}
		n.sendTripReminder(ctx, post)

	case end.Before(utils.StartOfDay(now, n.loc)):
		log.Printf("Post ID: %s is completed. Changing status to INACTIVE.", post.ID)
		if err := n.postStatus.UpdateStatusToInactive(ctx, post.ID); err != nil {
			log.Printf("Failed to update status to INACTIVE for post ID: %s: %v", post.ID, err)
		}
	}
}

// sendTripReminder resolves each participant's email and enqueues one
// delivery per participant. Resolution runs concurrently and a failure
// for one participant never blocks the others. Returns after all
// deliveries are enqueued, not delivered.
func (n *NotificationService) sendTripReminder(ctx context.Context, post *dbm.Post) {
	var wg sync.WaitGroup
	for _, user := range post.Users {
		wg.Add(1)
		go func(user string) {
			defer wg.Done()

			email, err := n.directory.GetEmailFromUsername(ctx, user)
			if err != nil {
				log.Printf("Failed to resolve email for user %s on post %s: %v", user, post.ID, err)
				return
			}

			log.Printf("Queueing reminder to: %s for post ID: %s", email, post.ID)
			if err := n.dispatcher.Enqueue(MailJob{To: email, User: user, Post: post}); err != nil {
				log.Printf("Failed to queue reminder for %s on post %s: %v", user, post.ID, err)
			}
		}(user)
	}
	wg.Wait()
}
