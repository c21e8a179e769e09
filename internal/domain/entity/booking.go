package entity

type Booking struct {
	ID               string  `json:"id" firestore:"id"`
	ServiceID        string  `json:"serviceId" firestore:"serviceId"`
	ServiceName      string  `json:"serviceName" firestore:"serviceName"`
	ServiceImage     string  `json:"serviceImage,omitempty" firestore:"serviceImage,omitempty"`
	Price            float64 `json:"price" firestore:"price"`
	Date             string  `json:"date" firestore:"date"`
	Instruction      string  `json:"instruction,omitempty" firestore:"instruction,omitempty"`
	ProviderName     string  `json:"providerName" firestore:"providerName"`
	ProviderEmail    string  `json:"providerEmail" firestore:"providerEmail"`
	CurrentUserName  string  `json:"currentUserName" firestore:"currentUserName"`
	CurrentUserEmail string  `json:"currentUserEmail" firestore:"currentUserEmail"`
	Status           string  `json:"status" firestore:"status"`
}
