package checkout

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"auroracraft.gg/aurora-web/internal/cart"
	"auroracraft.gg/aurora-web/internal/format"
	"auroracraft.gg/aurora-web/internal/rates"
	"auroracraft.gg/aurora-web/internal/webhook"
)

const (
	botUsername  = "Aurora Store Bot"
	botAvatarURL = "https://cdn-icons-png.flaticon.com/512/3062/3062634.png"
	// Shown in place of a proof screenshot on free claims.
	freeClaimImageURL = "https://cdn-icons-png.flaticon.com/512/5720/5720434.png"

	colorFreeClaim = 5566367  // green
	colorPaidOrder = 16766720 // gold
)

// ErrSubmitFailed is the generic buyer-facing failure message; the underlying
// cause is logged server-side only.
const ErrSubmitFailed = "Failed to send transaction. Please check your connection or contact an admin on Discord."

// Result reports a completed submission.
type Result struct {
	Ref  string
	Free bool
}

// Submitter sends validated drafts to the review webhook.
type Submitter struct {
	Webhook *webhook.Client
}

// Submit assembles the staff notification for the draft and cart contents and
// delivers it in a single attempt. The caller must have validated the draft;
// a delivery failure leaves the cart untouched so the buyer can resubmit.
// Resubmission produces a brand-new, independent notification.
func (s *Submitter) Submit(ctx context.Context, d Draft, lines []cart.Line, total int64) (Result, error) {
	ref := uuid.NewString()
	free := total == 0

	msg := webhook.Message{
		Username:  botUsername,
		AvatarURL: botAvatarURL,
		Embeds:    []webhook.Embed{s.buildEmbed(d, lines, total, ref)},
	}

	var proof *webhook.Attachment
	if !free {
		proof = d.Proof
	}
	if err := s.Webhook.Send(ctx, msg, proof); err != nil {
		return Result{}, err
	}
	return Result{Ref: ref, Free: free}, nil
}

func (s *Submitter) buildEmbed(d Draft, lines []cart.Line, total int64, ref string) webhook.Embed {
	free := total == 0

	fields := []webhook.Field{
		{Name: "👤 IGN", Value: fmt.Sprintf("`%s`", strings.TrimSpace(d.IGN)), Inline: true},
		{Name: "💬 Discord", Value: fmt.Sprintf("`%s`", strings.TrimSpace(d.Discord)), Inline: true},
	}
	if free {
		fields = append(fields,
			webhook.Field{Name: "💳 Method", Value: "FREE CLAIM", Inline: true},
			webhook.Field{Name: "💰 Total EGP", Value: format.FmtEGP(0), Inline: true},
		)
	} else {
		fields = append(fields,
			webhook.Field{Name: "💳 Method", Value: d.Method.ReviewLabel(), Inline: true},
			webhook.Field{Name: "💰 Total EGP", Value: format.FmtEGP(total), Inline: true},
			webhook.Field{Name: "💱 Transfer Amount", Value: TransferAmount(d.Method, total, d.Quote), Inline: true},
		)
		if d.Method.ConvertsToSAR() {
			fields = append(fields, webhook.Field{
				Name:   "📈 Rate Applied",
				Value:  format.FmtRate(d.Quote.Rate),
				Inline: true,
			})
		}
	}
	fields = append(fields, webhook.Field{Name: "📦 Cart Items", Value: cartItemsValue(lines)})

	embed := webhook.Embed{
		Fields:    fields,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if free {
		embed.Title = "🎁 New Free Rank Claim"
		embed.Description = "A player has claimed a free package."
		embed.Color = colorFreeClaim
		embed.Image = &webhook.Image{URL: freeClaimImageURL}
		embed.Footer = &webhook.Footer{
			Text:    fmt.Sprintf("Aurora Craft | Free Claim • %s", ref),
			IconURL: botAvatarURL,
		}
	} else {
		embed.Title = "🛒 New Transaction Submission"
		embed.Description = "A verified player has submitted a purchase receipt."
		embed.Color = colorPaidOrder
		embed.Footer = &webhook.Footer{
			Text:    fmt.Sprintf("Aurora Craft | Guest Purchase • %s", ref),
			IconURL: botAvatarURL,
		}
		if d.Proof != nil && d.Proof.Filename != "" {
			embed.Image = &webhook.Image{URL: "attachment://" + d.Proof.Filename}
		}
	}
	return embed
}

// TransferAmount renders the amount the buyer actually sends: the converted
// SAR amount for STC Pay, the raw EGP total otherwise, "FREE" for zero.
func TransferAmount(m Method, total int64, q rates.Quote) string {
	if total == 0 {
		return "FREE"
	}
	if m.ConvertsToSAR() {
		return format.FmtSAR(rates.ConvertEGPToSAR(total, q.Rate))
	}
	return format.FmtEGP(total)
}

func cartItemsValue(lines []cart.Line) string {
	if len(lines) == 0 {
		return "No items"
	}
	names := make([]string, 0, len(lines))
	for _, ln := range lines {
		names = append(names, "• "+ln.Entry.Name)
	}
	return strings.Join(names, "\n")
}
