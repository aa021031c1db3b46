package models

// Option is a priced variant of a Service. It lives inside its parent
// Service document and is only ever edited through a whole-service update.
type Option struct {
	ID    string  `json:"id" bson:"id"`
	Name  string  `json:"name" bson:"name"`
	Price float64 `json:"price" bson:"price"`
}

// Service is a bookable salon service with one or more priced options.
type Service struct {
	ID          string   `json:"id" bson:"id"`
	Name        string   `json:"name" bson:"name"`
	Description string   `json:"description" bson:"description"`
	Image       string   `json:"image" bson:"image"`
	Options     []Option `json:"options" bson:"options"`
}

// FindOption returns the option with the given ID, or nil.
func (s *Service) FindOption(optionID string) *Option {
	for i := range s.Options {
		if s.Options[i].ID == optionID {
			return &s.Options[i]
		}
	}
	return nil
}
