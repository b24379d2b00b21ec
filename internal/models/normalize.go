package models

// Projection constructors. Every outbound shape is built here so the store
// key leaves the process in exactly one way: renamed to a public string "id".
// Constructors take their record by value and never touch the stored copy.

func NewUserProfileOut(u UserProfile) UserProfileOut {
	return UserProfileOut{
		Username:   u.Username,
		Age:        u.Age,
		TrustScore: u.TrustScore,
	}
}

func NewCharacterOut(c Character) CharacterOut {
	return CharacterOut{
		ID:              c.DocID,
		Name:            c.Name,
		Personality:     c.Personality,
		Appearance:      c.Appearance,
		Location:        c.Location,
		CreatorUsername: c.CreatorUsername,
		NSFWAllowed:     c.NSFWAllowed,
		CreatedAt:       c.CreatedAt,
	}
}

func NewCharacterOutList(cs []Character) []CharacterOut {
	out := make([]CharacterOut, 0, len(cs))
	for _, c := range cs {
		out = append(out, NewCharacterOut(c))
	}
	return out
}

func NewMessageOut(m Message) MessageOut {
	return MessageOut{
		ID:          m.DocID,
		CharacterID: m.CharacterID,
		Username:    m.Username,
		Text:        m.Text,
		Role:        m.Role,
		CreatedAt:   m.CreatedAt,
	}
}

func NewMessageOutList(ms []Message) []MessageOut {
	out := make([]MessageOut, 0, len(ms))
	for _, m := range ms {
		out = append(out, NewMessageOut(m))
	}
	return out
}
