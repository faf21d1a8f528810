package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"neonburro-api/internal/domain"
	"neonburro-api/internal/forms"
	"neonburro-api/internal/payment"
	"neonburro-api/internal/receipt"
)

// Fixed-scope service packages purchasable instead of raw hours.
var packagePriceCents = map[string]int64{
	"spark":     49900,
	"ignite":    129900,
	"transform": 299900,
}

// Service drives the two-step checkout wizard: project details (or cart
// review) -> payment -> success. A draft only ever moves forward through a
// passing guard; any failure leaves it parked on its current step.
type Service struct {
	drafts          *draftStore
	provider        payment.Provider
	carts           cartAccess
	orders          orderRepo
	forms           *forms.Client
	logger          *zap.Logger
	hourlyRateCents int64
}

type cartAccess interface {
	Get(ctx context.Context, cartID string) (*domain.Cart, error)
	Clear(ctx context.Context, cartID string) error
}

type orderRepo interface {
	Create(ctx context.Context, order *domain.Order) error
}

func New(provider payment.Provider, carts cartAccess, orders orderRepo, formsClient *forms.Client, logger *zap.Logger, hourlyRateCents int64) *Service {
	return &Service{
		drafts:          newDraftStore(),
		provider:        provider,
		carts:           carts,
		orders:          orders,
		forms:           formsClient,
		logger:          logger,
		hourlyRateCents: hourlyRateCents,
	}
}

// StartProject opens a draft for an hour or package purchase.
func (s *Service) StartProject() domain.CheckoutDraft {
	return s.start(kindProject, "")
}

// StartShop opens a draft that will charge the given cart.
func (s *Service) StartShop(cartID string) domain.CheckoutDraft {
	return s.start(kindShop, cartID)
}

func (s *Service) start(kind draftKind, cartID string) domain.CheckoutDraft {
	draft := domain.CheckoutDraft{
		ID:        uuid.NewString(),
		Step:      domain.StepDetails,
		CreatedAt: time.Now().UTC(),
	}
	s.drafts.save(draftState{Draft: draft, Kind: kind, CartID: cartID})
	return draft
}

// Get returns the draft by id.
func (s *Service) Get(id string) (domain.CheckoutDraft, error) {
	st, ok := s.drafts.get(id)
	if !ok {
		return domain.CheckoutDraft{}, domain.ErrNotFound
	}
	return st.Draft, nil
}

// Abandon destroys a draft before completion, e.g. when the user navigates
// away. Any in-flight payment intent is simply left to the provider.
func (s *Service) Abandon(id string) {
	s.drafts.delete(id)
}

type DetailsInput struct {
	FirstName           string `json:"firstName"`
	ProjectName         string `json:"projectName"`
	Hours               int    `json:"hours,omitempty"`
	PackageType         string `json:"packageType,omitempty"`
	IsVIP               bool   `json:"isVip"`
	WantsHostingDetails bool   `json:"wantsHostingDetails"`
}

// SubmitDetails validates step 1, computes and freezes the total, and
// advances the draft to the payment step. Validation failure keeps the draft
// on the details step untouched.
func (s *Service) SubmitDetails(ctx context.Context, id string, in DetailsInput) (domain.CheckoutDraft, error) {
	st, ok := s.drafts.get(id)
	if !ok {
		return domain.CheckoutDraft{}, domain.ErrNotFound
	}
	if st.Draft.Step != domain.StepDetails {
		return domain.CheckoutDraft{}, domain.ErrInvalidStep
	}

	details := domain.ProjectDetails{
		FirstName:           strings.TrimSpace(in.FirstName),
		ProjectName:         strings.TrimSpace(in.ProjectName),
		Hours:               in.Hours,
		PackageType:         strings.TrimSpace(in.PackageType),
		IsVIP:               in.IsVIP,
		WantsHostingDetails: in.WantsHostingDetails,
	}
	if details.FirstName == "" {
		return domain.CheckoutDraft{}, errors.New("firstName required")
	}

	switch st.Kind {
	case kindProject:
		if details.ProjectName == "" {
			return domain.CheckoutDraft{}, errors.New("projectName required")
		}
		total, isPackage, err := s.projectTotal(details)
		if err != nil {
			return domain.CheckoutDraft{}, err
		}
		details.TotalCents = total
		details.IsServicePackage = isPackage
	case kindShop:
		cart, err := s.carts.Get(ctx, st.CartID)
		if err != nil {
			return domain.CheckoutDraft{}, err
		}
		details.TotalCents = cart.TotalCents()
		st.Lines = append([]domain.CartLine(nil), cart.Lines...)
	}
	if details.TotalCents <= 0 {
		return domain.CheckoutDraft{}, errors.New("total must be positive")
	}

	st.Draft.Details = details
	st.Draft.Step = domain.StepPayment
	st.Draft.FrozenAt = time.Now().UTC()
	s.drafts.save(st)
	return st.Draft, nil
}

func (s *Service) projectTotal(d domain.ProjectDetails) (int64, bool, error) {
	switch {
	case d.Hours > 0 && d.PackageType != "":
		return 0, false, errors.New("choose hours or a package, not both")
	case d.Hours > 0:
		return int64(d.Hours) * s.hourlyRateCents, false, nil
	case d.PackageType != "":
		price, ok := packagePriceCents[d.PackageType]
		if !ok {
			return 0, false, fmt.Errorf("unknown package %q", d.PackageType)
		}
		return price, true, nil
	default:
		return 0, false, errors.New("hours or package required")
	}
}

// Back returns a payment-step draft to the details step. The frozen total is
// discarded; step 1 must pass its guard again.
func (s *Service) Back(id string) (domain.CheckoutDraft, error) {
	st, ok := s.drafts.get(id)
	if !ok {
		return domain.CheckoutDraft{}, domain.ErrNotFound
	}
	if st.Draft.Step != domain.StepPayment {
		return domain.CheckoutDraft{}, domain.ErrInvalidStep
	}
	st.Draft.Step = domain.StepDetails
	st.Draft.FrozenAt = time.Time{}
	st.Lines = nil
	s.drafts.save(st)
	return st.Draft, nil
}

type PaymentContext struct {
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	AgreeToTerms bool   `json:"agreeToTerms"`
}

// CreateIntent registers a payment intent for the frozen total and pins the
// contact fields on the draft. The terms flag is recorded as submitted; it
// is re-checked at completion, including on the wallet path, because the
// wallet callback can fire out-of-band with the wizard's own validation.
func (s *Service) CreateIntent(ctx context.Context, id string, pc PaymentContext) (domain.CheckoutDraft, *payment.Intent, error) {
	st, ok := s.drafts.get(id)
	if !ok {
		return domain.CheckoutDraft{}, nil, domain.ErrNotFound
	}
	if st.Draft.Step != domain.StepPayment {
		return domain.CheckoutDraft{}, nil, domain.ErrInvalidStep
	}
	email := strings.TrimSpace(pc.Email)
	if email == "" {
		return domain.CheckoutDraft{}, nil, errors.New("email required")
	}

	intent, err := s.provider.CreateIntent(ctx, st.Draft.Details.TotalCents, email, map[string]string{
		"checkoutId":  st.Draft.ID,
		"firstName":   st.Draft.Details.FirstName,
		"projectName": st.Draft.Details.ProjectName,
	})
	if err != nil {
		return domain.CheckoutDraft{}, nil, fmt.Errorf("create payment intent: %w", err)
	}

	st.Draft.Email = email
	st.Draft.Phone = strings.TrimSpace(pc.Phone)
	st.Draft.AgreeToTerms = pc.AgreeToTerms
	st.Draft.PaymentIntentID = intent.ID
	s.drafts.save(st)
	return st.Draft, intent, nil
}

type CompleteInput struct {
	PaymentIntentID string `json:"paymentIntentId"`
	PaymentMethod   string `json:"paymentMethod,omitempty"`
	AgreeToTerms    bool   `json:"agreeToTerms"`
	BillingAddress  string `json:"billingAddress,omitempty"`
	BillingCity     string `json:"billingCity,omitempty"`
	BillingZip      string `json:"billingZip,omitempty"`
}

// Complete is the card path: the SPA confirmed the payment and reports back.
// Guards, in order: payment step, terms accepted, provider says the intent
// succeeded for the frozen amount. Only then is the order minted.
func (s *Service) Complete(ctx context.Context, id string, in CompleteInput) (*domain.Order, error) {
	st, ok := s.drafts.get(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	if !in.AgreeToTerms {
		return nil, domain.ErrTermsNotAccepted
	}
	intentID := strings.TrimSpace(in.PaymentIntentID)
	if intentID == "" {
		intentID = st.Draft.PaymentIntentID
	}
	st.Draft.AgreeToTerms = true
	return s.finish(ctx, st, intentID, in)
}

// CompleteFromWallet is the out-of-band path, entered from the provider
// webhook after a one-tap wallet confirmation. It re-validates the terms
// guard from the draft itself rather than trusting the wizard, since the
// callback timing is uncorrelated with the UI.
func (s *Service) CompleteFromWallet(ctx context.Context, intentID string) (*domain.Order, error) {
	st, ok := s.drafts.getByIntent(intentID)
	if !ok {
		return nil, domain.ErrNotFound
	}
	if !st.Draft.AgreeToTerms {
		s.logger.Warn("wallet completion rejected, terms not accepted",
			zap.String("checkout_id", st.Draft.ID),
			zap.String("payment_intent", intentID),
		)
		return nil, domain.ErrTermsNotAccepted
	}
	return s.finish(ctx, st, intentID, CompleteInput{PaymentMethod: "wallet", AgreeToTerms: true})
}

// finish is the convergence point of the card and wallet paths.
func (s *Service) finish(ctx context.Context, st draftState, intentID string, in CompleteInput) (*domain.Order, error) {
	if st.Draft.Step != domain.StepPayment {
		return nil, domain.ErrInvalidStep
	}
	if st.Draft.Email == "" {
		return nil, errors.New("contact email required")
	}
	if intentID == "" {
		return nil, errors.New("paymentIntentId required")
	}

	intent, err := s.provider.GetIntent(ctx, intentID)
	if err != nil {
		return nil, fmt.Errorf("verify payment intent: %w", err)
	}
	if intent.Status != payment.StatusSucceeded {
		return nil, fmt.Errorf("%w: intent status %q", domain.ErrPaymentIncomplete, intent.Status)
	}
	if intent.AmountCents != st.Draft.Details.TotalCents {
		return nil, fmt.Errorf("%w: intent amount %d does not match order total %d",
			domain.ErrPaymentIncomplete, intent.AmountCents, st.Draft.Details.TotalCents)
	}

	method := in.PaymentMethod
	if method == "" {
		method = intent.Method
	}
	order := &domain.Order{
		Number:          receipt.OrderNumber(intentID),
		PaymentIntentID: intentID,
		PaymentMethod:   method,
		FirstName:       st.Draft.Details.FirstName,
		ProjectName:     st.Draft.Details.ProjectName,
		Email:           st.Draft.Email,
		Phone:           st.Draft.Phone,
		BillingAddress:  in.BillingAddress,
		BillingCity:     in.BillingCity,
		BillingZip:      in.BillingZip,
		TotalCents:      st.Draft.Details.TotalCents,
		CreatedAt:       time.Now().UTC(),
	}

	switch st.Kind {
	case kindShop:
		// The snapshot frozen with the total, not the live cart: lines and
		// charged amount stay consistent even if the cart mutated since.
		for _, l := range st.Lines {
			order.Lines = append(order.Lines, domain.OrderLine{
				ProductID:  l.ProductID,
				Name:       l.Name,
				PriceCents: l.PriceCents,
				Quantity:   l.Quantity,
				Size:       l.Size,
				Design:     l.Design,
				Tier:       l.Tier,
			})
		}
	case kindProject:
		order.Lines = append(order.Lines, projectLine(st.Draft.Details))
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("persist order: %w", err)
	}

	s.forms.Submit(ctx, forms.FormPaymentComplete, map[string]string{
		"orderNumber": order.Number,
		"firstName":   order.FirstName,
		"email":       order.Email,
		"total":       fmt.Sprintf("%d", order.TotalCents),
		"method":      order.PaymentMethod,
	})

	if st.Kind == kindShop {
		if err := s.carts.Clear(ctx, st.CartID); err != nil {
			// The order exists; a stale cart is an annoyance, not a failure.
			s.logger.Warn("clearing cart after order failed",
				zap.String("cart_id", st.CartID),
				zap.Error(err),
			)
		}
	}

	s.drafts.delete(st.Draft.ID)
	return order, nil
}

func projectLine(d domain.ProjectDetails) domain.OrderLine {
	if d.IsServicePackage {
		return domain.OrderLine{
			ProductID:  "package-" + d.PackageType,
			Name:       "Service package: " + d.PackageType,
			PriceCents: d.TotalCents,
			Quantity:   1,
		}
	}
	return domain.OrderLine{
		ProductID:  "dev-hours",
		Name:       fmt.Sprintf("Development hours x%d", d.Hours),
		PriceCents: d.TotalCents / int64(d.Hours),
		Quantity:   d.Hours,
	}
}
