package config

import "github.com/talgya/lifesim/internal/trait"

func tv(k trait.Kind, v int) trait.Value { return trait.Value{Kind: k, Value: v} }

// DefaultWorld returns the built-in playable dataset. Tests and the bundled
// commands use it when no world file is supplied.
func DefaultWorld() *World {
	return &World{
		Params:       DefaultParams(),
		Companies:    defaultCompanies(),
		Categories:   defaultCategories(),
		Messages:     DefaultMessages(),
		Events:       defaultEvents(),
		Achievements: defaultAchievements(),
	}
}

func defaultCompanies() []Company {
	return []Company{
		{
			Name: "Pixel Forge",
			Positions: []Position{
				{
					Name: "Junior Developer", Payment: 120,
					Preconditions: Traits{tv(trait.Skill, 10)},
					Requirements:  Traits{tv(trait.Skill, 20)},
				},
				{
					Name: "Developer", Payment: 260,
					Preconditions: Traits{tv(trait.Skill, 40)},
					Requirements:  Traits{tv(trait.Skill, 60)},
				},
				{
					Name: "Senior Developer", Payment: 480,
					Preconditions: Traits{tv(trait.Skill, 90)},
					Requirements:  Traits{tv(trait.Skill, 120), tv(trait.Talking, 10)},
				},
			},
		},
		{
			Name: "Molten Core Systems",
			Positions: []Position{
				{
					Name: "Support Engineer", Payment: 100,
					Preconditions: Traits{tv(trait.Skill, 5), tv(trait.Talking, 5)},
					Requirements:  Traits{tv(trait.Skill, 15), tv(trait.Talking, 10)},
				},
				{
					Name: "Systems Engineer", Payment: 300,
					Preconditions: Traits{tv(trait.Skill, 50)},
					Requirements:  Traits{tv(trait.Skill, 70)},
				},
				{
					Name: "Architect", Payment: 560,
					Preconditions: Traits{tv(trait.Skill, 110)},
					Requirements:  Traits{tv(trait.Skill, 140), tv(trait.Talking, 20)},
				},
			},
		},
		{
			Name: "Brightline Media",
			Positions: []Position{
				{
					Name: "Copywriter", Payment: 90,
					Preconditions: Traits{tv(trait.Talking, 10)},
					Requirements:  Traits{tv(trait.Talking, 20)},
				},
				{
					Name: "Account Manager", Payment: 240,
					Preconditions: Traits{tv(trait.Talking, 40)},
					Requirements:  Traits{tv(trait.Talking, 60), tv(trait.Social, 10)},
				},
			},
		},
		{
			Name: "Granite & Sons",
			Positions: []Position{
				{
					Name: "Warehouse Hand", Payment: 70,
					Requirements: Traits{tv(trait.Sport, 5)},
				},
				{
					Name: "Shift Supervisor", Payment: 180,
					Preconditions: Traits{tv(trait.Sport, 20)},
					Requirements:  Traits{tv(trait.Sport, 30), tv(trait.Talking, 15)},
				},
			},
		},
		{
			Name: "Nimbus Analytics",
			Positions: []Position{
				{
					Name: "Data Clerk", Payment: 110,
					Preconditions: Traits{tv(trait.Skill, 15)},
					Requirements:  Traits{tv(trait.Skill, 25)},
				},
				{
					Name: "Analyst", Payment: 280,
					Preconditions: Traits{tv(trait.Skill, 55)},
					Requirements:  Traits{tv(trait.Skill, 75), tv(trait.Talking, 10)},
				},
				{
					Name: "Lead Analyst", Payment: 520,
					Preconditions: Traits{tv(trait.Skill, 100)},
					Requirements:  Traits{tv(trait.Skill, 130), tv(trait.Talking, 25)},
				},
			},
		},
	}
}

func defaultCategories() []Category {
	return []Category{
		{
			Name: "Career",
			Decisions: []Decision{
				{
					Name: "Publish résumé", ID: DecisionPublishResume,
					Days: 1,
				},
				{
					Name: "Go to work", ID: DecisionWork,
					Days: 1, Scaled: true,
					Changes: Traits{tv(trait.Stress, 4)},
				},
				{
					Name: "Ask for promotion", ID: DecisionWorkPromotion,
					Days: 1,
					Changes: Traits{tv(trait.Stress, 6)},
				},
				{
					Name: "Ask for recommendation", ID: DecisionWorkRecommend,
					Days: 1,
				},
			},
		},
		{
			Name: "Study",
			Decisions: []Decision{
				{
					Name: "Programming course",
					Days: 14, Scaled: true,
					Changes: Traits{tv(trait.Money, -200), tv(trait.Skill, 12), tv(trait.Stress, 5)},
				},
				{
					Name: "Advanced engineering",
					Days: 30, Scaled: true,
					Min:     Traits{tv(trait.Skill, 40)},
					Changes: Traits{tv(trait.Money, -900), tv(trait.Skill, 30), tv(trait.Stress, 10)},
				},
				{
					Name: "Public speaking club",
					Days: 7, Scaled: true,
					Changes: Traits{tv(trait.Money, -80), tv(trait.Talking, 8)},
				},
			},
		},
		{
			Name: "Life",
			Decisions: []Decision{
				{
					Name: "Rest at home",
					Days: 2, Scaled: true,
					Changes: Traits{tv(trait.Stress, -12)},
				},
				{
					Name: "Party with friends",
					Days: 1,
					Changes: Traits{tv(trait.Money, -60), tv(trait.Stress, -18), tv(trait.Social, 4), tv(trait.Alcohol, 2), tv(trait.Disease, 2)},
				},
				{
					Name: "Morning runs",
					Days: 7, Scaled: true,
					Changes: Traits{tv(trait.Sport, 6), tv(trait.Disease, -4), tv(trait.Stress, -4)},
				},
				{
					Name: "Binge alone",
					Days: 2,
					Max:     Traits{tv(trait.Madness, 80)},
					Changes: Traits{tv(trait.Money, -40), tv(trait.Stress, -10), tv(trait.Alcohol, 5), tv(trait.Disease, 4), tv(trait.Madness, 3)},
				},
			},
		},
		{
			Name: "Health",
			Decisions: []Decision{
				{
					Name: "See a doctor",
					Days: 1,
					Changes: Traits{tv(trait.Money, -150), tv(trait.Disease, -25)},
				},
				{
					Name: "Therapy session",
					Days: 1,
					Changes: Traits{tv(trait.Money, -120), tv(trait.Madness, -15), tv(trait.Stress, -8)},
				},
			},
		},
	}
}

// DefaultMessages returns the built-in message catalog.
func DefaultMessages() Messages {
	return Messages{
		Welcome:            Message{"A new life", "You are on your own now. Make something of it."},
		HeartAttack:        Message{"Heart attack", "Years of stress finally caught up with you."},
		Finish:             Message{"The end", "Your life came to a close at age %d."},
		LowMoney:           Message{"Empty pockets", "You are flat broke. The landlord noticed too."},
		MonthPayment:       Message{"Monthly allowance", "Your family wired you a little money."},
		WorkInvite:         Message{"Interview invitation", "'%s' wants to talk about the %s position (%+d to your pay)."},
		NoWorkInvites:      Message{"No replies", "Nobody answered your résumé this time."},
		InterviewFailed:    Message{"Interview failed", "'%s' passed on you for the %s position."},
		NewJob:             Message{"New job!", "You start as %s at '%s' next week."},
		StressWarning:      Message{"Burning out", "Your hands shake and sleep doesn't help. Slow down."},
		PromotionOk:        Message{"Promoted", "You are now %s at '%s'."},
		PromotionNone:      Message{"Not this year", "The boss smiled and said to try again later."},
		WorkProgressNotice: Message{"Another day at work", "You are getting the hang of this."},
		LostJob:            Message{"Fired", "'%s' let you go for not showing up."},
		DiseaseWarning:     Message{"Feeling ill", "That cough isn't going away on its own."},
		DiseaseDeath:       Message{"Illness", "The untreated illness finally won."},
		MadWarning:         Message{"Slipping", "You keep hearing your phone ring when it doesn't."},
		MadDeath:           Message{"Breakdown", "You lost touch with the world entirely."},
		NaturalDeath:       Message{"Old age", "You passed quietly in your sleep."},
	}
}

func defaultEvents() []RandomEvent {
	return []RandomEvent{
		{
			Name: "street_robbery", Cancelable: false,
			Title: "Robbed", Content: "Someone snatched your bag on the way home.",
			Decision: Decision{
				Name: "Robbed", Days: 0,
				Changes: Traits{tv(trait.Money, -100), tv(trait.Stress, 10)},
			},
		},
		{
			Name: "old_friend_startup", Cancelable: true,
			Title: "An old friend calls", Content: "A friend wants you to moonlight on their startup for a month.",
			Decision: Decision{
				Name: "Moonlight at startup", Days: 30, Scaled: true,
				Min:     Traits{tv(trait.Skill, 20)},
				Changes: Traits{tv(trait.Money, 300), tv(trait.Skill, 8), tv(trait.Stress, 15)},
			},
			AcceptMsg:  &Message{"Shipped it", "The side project actually launched. You learned a lot."},
			DeclineMsg: &Message{"Maybe next time", "Your friend sounded disappointed."},
		},
		{
			Name: "flu_season", Cancelable: false,
			Title: "Flu season", Content: "Half the city is sneezing, and now so are you.",
			Decision: Decision{
				Name: "Caught the flu", Days: 4,
				Changes: Traits{tv(trait.Disease, 12), tv(trait.Stress, 4)},
			},
		},
		{
			Name: "lottery_ticket", Cancelable: true,
			Title: "Scratch ticket", Content: "A kiosk vendor waves a lucky-looking ticket at you.",
			Decision: Decision{
				Name: "Buy a scratch ticket", Days: 0,
				Min:     Traits{tv(trait.Money, 20)},
				Changes: Traits{tv(trait.Money, 30)},
			},
			AcceptMsg: &Message{"Small win", "Fifty back on a twenty. Not bad."},
		},
	}
}

func defaultAchievements() []AchievementRule {
	return []AchievementRule{
		{Trait: TraitName(trait.Skill), Min: 100, Label: "Master of the craft"},
		{Trait: TraitName(trait.Talking), Min: 60, Label: "Silver tongue"},
		{Trait: TraitName(trait.Money), Min: 10000, Label: "First real savings"},
		{Trait: TraitName(trait.Sport), Min: 50, Label: "Iron constitution"},
		{Trait: TraitName(trait.Alcohol), Min: 20, Label: "Regular at the bar"},
		{Trait: TraitName(trait.Social), Min: 40, Label: "Everyone's friend"},
	}
}
