package models

type WebDriverStatus struct {
	Value WebDriverReadyStatus `json:"value"`
}

type WebDriverReadyStatus struct {
	Ready   bool   `json:"ready"`
	Message string `json:"message,omitempty"`
}

func NewWebDriverStatus(ready bool, message string) *WebDriverStatus {
	return &WebDriverStatus{
		Value: WebDriverReadyStatus{
			Ready:   ready,
			Message: message,
		},
	}
}
