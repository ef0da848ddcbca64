package domain

// Category is the product category label shown on cards
type Category string

const (
	CategorySoftSkill  Category = "софт-скил"
	CategoryHardSkill  Category = "хард-скил"
	CategoryAdditional Category = "дополнительное"
	CategoryButton     Category = "кнопка"
	CategoryOther      Category = "другое"
)

// IsValid checks if the category is one of the known labels
func (c Category) IsValid() bool {
	switch c {
	case CategorySoftSkill,
		CategoryHardSkill,
		CategoryAdditional,
		CategoryButton,
		CategoryOther:
		return true
	default:
		return false
	}
}

// Modifier returns the card modifier class for the category.
// Unknown categories fall back to the "other" modifier.
func (c Category) Modifier() string {
	switch c {
	case CategorySoftSkill:
		return "card__category_soft"
	case CategoryHardSkill:
		return "card__category_hard"
	case CategoryAdditional:
		return "card__category_additional"
	case CategoryButton:
		return "card__category_button"
	default:
		return "card__category_other"
	}
}

// PaymentMethod represents how the customer pays for the order
type PaymentMethod string

const (
	PaymentUnset PaymentMethod = ""
	PaymentCard  PaymentMethod = "card"
	PaymentCash  PaymentMethod = "cash"
)

// IsValid checks if the payment method is a selectable one
func (p PaymentMethod) IsValid() bool {
	return p == PaymentCard || p == PaymentCash
}

// OrderField names a field of the payment/address step
type OrderField string

const (
	OrderFieldPayment OrderField = "payment"
	OrderFieldAddress OrderField = "address"
)

// IsValid checks if the field belongs to the payment/address step
func (f OrderField) IsValid() bool {
	return f == OrderFieldPayment || f == OrderFieldAddress
}

// ContactField names a field of the contacts step
type ContactField string

const (
	ContactFieldEmail ContactField = "email"
	ContactFieldPhone ContactField = "phone"
)

// IsValid checks if the field belongs to the contacts step
func (f ContactField) IsValid() bool {
	return f == ContactFieldEmail || f == ContactFieldPhone
}

// CheckoutStep is the screen the session is currently on
type CheckoutStep string

const (
	StepCatalog   CheckoutStep = "catalog"
	StepPreview   CheckoutStep = "preview"
	StepBasket    CheckoutStep = "basket"
	StepPayment   CheckoutStep = "payment"
	StepContacts  CheckoutStep = "contacts"
	StepSubmitted CheckoutStep = "submitted"
	StepFailed    CheckoutStep = "failed"
)

func (s CheckoutStep) String() string {
	return string(s)
}

// CanTransitionTo checks if a step transition is valid
func (s CheckoutStep) CanTransitionTo(next CheckoutStep) bool {
	switch s {
	case StepCatalog:
		return next == StepPreview ||
			next == StepBasket
	case StepPreview:
		return next == StepCatalog ||
			next == StepBasket
	case StepBasket:
		return next == StepPayment ||
			next == StepCatalog
	case StepPayment:
		return next == StepContacts ||
			next == StepCatalog
	case StepContacts:
		return next == StepSubmitted ||
			next == StepFailed ||
			next == StepCatalog
	case StepFailed:
		// retry from the contacts form
		return next == StepSubmitted ||
			next == StepFailed ||
			next == StepCatalog
	case StepSubmitted:
		return next == StepCatalog
	default:
		return false
	}
}
