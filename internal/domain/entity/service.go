package entity

type Provider struct {
	Name  string `json:"name" firestore:"name"`
	Email string `json:"email" firestore:"email"`
	Image string `json:"image,omitempty" firestore:"image,omitempty"`
}

type Service struct {
	ID          string   `json:"id" firestore:"id"`
	Name        string   `json:"name" firestore:"name"`
	Price       float64  `json:"price" firestore:"price"`
	Description string   `json:"description" firestore:"description"`
	Image       string   `json:"image,omitempty" firestore:"image,omitempty"`
	ServiceArea string   `json:"serviceArea" firestore:"serviceArea"`
	Provider    Provider `json:"provider" firestore:"provider"`
}

// ServiceFields holds the mutable subset of a Service. An update writes
// exactly these five fields and leaves everything else on the document alone.
type ServiceFields struct {
	Name        string  `json:"name" firestore:"name"`
	Price       float64 `json:"price" firestore:"price"`
	Description string  `json:"description" firestore:"description"`
	Image       string  `json:"image" firestore:"image"`
	ServiceArea string  `json:"serviceArea" firestore:"serviceArea"`
}
