package notify

import (
	"fmt"

	"github.com/claimithub/claimit/internal/repository"
)

const dateLayout = "2006-01-02"

// StatusMessage is a total mapping from status to the user-facing message
// line used in status-change notices.
func StatusMessage(status string) string {
	switch status {
	case repository.StatusUnclaimed:
		return "Your item is now unclaimed."
	case repository.StatusPendingApproval:
		return "Your item is in pending approval. Please wait for it."
	case repository.StatusPendingPickup:
		return "Your item is ready for pickup. Please collect it."
	case repository.StatusClaimed:
		return "Your item has been successfully claimed. Thank you!"
	case repository.StatusRejected:
		return "Your claim has been rejected."
	case repository.StatusArchived:
		return "Your item has been archived."
	default:
		return "Your claim status has been updated."
	}
}

// ReminderBody picks the reminder wording by days left. The sweep fires at
// {30, 10, 2, 1} days, while the templates branch on 30 and 3; the mismatch
// is carried over from the original notification copy.
func ReminderBody(item *repository.Item, daysLeft int) string {
	expiration := item.ExpirationDate.Format(dateLayout)

	switch daysLeft {
	case 30:
		return fmt.Sprintf("Your claim for item %q will expire soon on %s. Please pick it up before then.",
			item.ItemName, expiration)
	case 3:
		return fmt.Sprintf("Your claim for item %q will expire in 30 days on %s. Please pick it up before the expiration date.",
			item.ItemName, expiration)
	default:
		return fmt.Sprintf("Your item %q is %d days away from expiration. Please take action before it's too late!",
			item.ItemName, daysLeft)
	}
}

func claimConfirmationBody(item *repository.Item) string {
	return fmt.Sprintf("Your claim for item %q has been received and is pending approval. The item expires on %s.",
		item.ItemName, item.ExpirationDate.Format(dateLayout))
}

func adminClaimAlertBody(item *repository.Item) string {
	return fmt.Sprintf("The item %q (id %s) has a new claim awaiting approval. It expires on %s.",
		item.ItemName, item.UniqueID, item.ExpirationDate.Format(dateLayout))
}

func archivedNoticeBody(item *repository.Item) string {
	return fmt.Sprintf("The item %q has been archived because its expiration date has passed. If you have any questions, please contact support.",
		item.ItemName)
}

func statusChangeBody(claim *repository.ClaimHistoryEntry) string {
	return fmt.Sprintf("%s (status: %s, date: %s)",
		StatusMessage(claim.Status), claim.Status, claim.ClaimDate.Format(dateLayout))
}
