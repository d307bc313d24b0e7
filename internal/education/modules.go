package education

import "github.com/tms-recovery/backend/internal/models"

// Module categories.
const (
	CategoryFundamentals = "fundamentals"
	CategoryPersonality  = "personality"
	CategoryEmotional    = "emotional"
	CategoryRecovery     = "recovery"
)

// Modules is the static curriculum, ordered from fundamentals to recovery.
// Prerequisites always reference earlier entries.
var Modules = []models.EducationalModule{
	{
		ID:                "tms-intro",
		Title:             "Introduction to TMS",
		Category:          CategoryFundamentals,
		Description:       "Understanding what Tension Myositis Syndrome is and how it affects the body",
		EstimatedReadTime: 15,
		Difficulty:        "beginner",
		Sections: []models.ContentSection{
			{
				ID:    "what-is-tms",
				Title: "What is TMS?",
				Type:  models.SectionText,
				Content: `Tension Myositis Syndrome (TMS) is a condition in which unconscious emotional tensions cause physical pain and other symptoms. Dr. John Sarno discovered that many chronic pain conditions are not caused by structural abnormalities, but by the mind's attempt to distract us from uncomfortable emotions.

The key insight is that the pain is real, but it's not caused by physical damage. Instead, it's caused by reduced blood flow to muscles, nerves, and tendons, triggered by the unconscious mind.`,
			},
			{
				ID:      "sarno-quote",
				Title:   "Dr. Sarno's Core Message",
				Type:    models.SectionQuote,
				Content: `"The pain is real, but it's not caused by a structural abnormality. It's caused by your unconscious mind to distract you from emotional issues that your conscious mind finds unacceptable." - Dr. John Sarno`,
			},
			{
				ID:    "how-tms-works",
				Title: "How TMS Works",
				Type:  models.SectionText,
				Content: `TMS operates through a process Dr. Sarno called "the distraction mechanism." When we have emotions that our conscious mind finds unacceptable (like rage, fear, or sadness), our unconscious mind creates physical symptoms to distract us from these feelings.

This happens because many of us have learned that certain emotions are "bad" or "dangerous." Rather than feel these emotions, our unconscious mind redirects our attention to physical pain.`,
			},
			{
				ID:    "common-tms-conditions",
				Title: "Common TMS Conditions",
				Type:  models.SectionText,
				Content: `TMS can manifest as many different conditions:

- Back pain (most common)
- Neck and shoulder pain
- Headaches and migraines
- Fibromyalgia
- Chronic fatigue syndrome
- Irritable bowel syndrome
- Tension headaches
- TMJ (jaw pain)
- Carpal tunnel syndrome
- Plantar fasciitis

The key is that these conditions often have no clear structural cause or don't respond well to physical treatments.`,
			},
			{
				ID:      "good-news",
				Title:   "The Good News",
				Type:    models.SectionTip,
				Content: `The wonderful news about TMS is that once you understand what's happening and address the underlying emotional issues, the pain often resolves completely. Many people experience significant improvement or complete recovery simply through knowledge and emotional awareness.`,
			},
		},
		KeyTakeaways: []string{
			"TMS is real physical pain caused by unconscious emotional tensions",
			"The pain serves as a distraction from uncomfortable emotions",
			"Understanding this mechanism is the first step toward healing",
			"Many chronic pain conditions may actually be TMS",
			"Recovery is possible through knowledge and emotional awareness",
		},
		ReflectionQuestions: []string{
			"When did your pain first begin? What was happening in your life at that time?",
			"Do you notice any patterns between stress and your pain levels?",
			"What emotions do you find most difficult to experience or express?",
		},
		Quiz: &models.ModuleQuiz{
			ID: "tms-intro-quiz",
			Questions: []models.QuizQuestion{
				{
					ID:       "q1",
					Question: "What causes TMS according to Dr. Sarno?",
					Type:     "multiple_choice",
					Options: []string{
						"Structural abnormalities in the spine",
						"Unconscious emotional tensions",
						"Poor posture and ergonomics",
						"Genetic predisposition",
					},
					CorrectAnswer: "1",
					Explanation:   "TMS is caused by unconscious emotional tensions that create physical symptoms as a distraction mechanism.",
					Points:        10,
				},
				{
					ID:            "q2",
					Question:      "TMS pain is not real pain.",
					Type:          "true_false",
					CorrectAnswer: "false",
					Explanation:   "TMS pain is absolutely real. The difference is that it's caused by emotional factors rather than structural damage.",
					Points:        10,
				},
				{
					ID:       "q3",
					Question: "What is the primary purpose of TMS symptoms?",
					Type:     "multiple_choice",
					Options: []string{
						"To punish us for bad behavior",
						"To distract us from uncomfortable emotions",
						"To make us rest and recover",
						"To signal structural damage",
					},
					CorrectAnswer: "1",
					Explanation:   "TMS symptoms serve as a distraction mechanism to keep our attention away from emotions the unconscious mind finds threatening.",
					Points:        10,
				},
			},
			PassingScore: 70,
		},
	},
	{
		ID:                  "mind-body-connection",
		Title:               "The Mind-Body Connection",
		Category:            CategoryFundamentals,
		Description:         "Exploring how emotions and thoughts directly affect physical health",
		EstimatedReadTime:   20,
		Difficulty:          "beginner",
		PrerequisiteModules: []string{"tms-intro"},
		Sections: []models.ContentSection{
			{
				ID:    "connection-overview",
				Title: "Understanding the Connection",
				Type:  models.SectionText,
				Content: `The mind and body are not separate entities. They are intimately connected: every emotion you feel has a physical component, and every physical sensation can influence your emotional state.

Dr. Sarno's revolutionary insight was recognizing that this connection could create real physical symptoms without any structural damage. The autonomic nervous system, which controls unconscious bodily functions, can be influenced by our emotional state.`,
			},
			{
				ID:    "autonomic-nervous-system",
				Title: "The Autonomic Nervous System",
				Type:  models.SectionText,
				Content: `The autonomic nervous system controls functions like:
- Heart rate and blood pressure
- Breathing
- Digestion
- Blood flow to muscles and organs
- Muscle tension

When we're stressed or experiencing strong emotions, this system can reduce blood flow to certain areas, causing pain, tension, and other symptoms.`,
			},
			{
				ID:    "emotional-repression",
				Title: "The Role of Emotional Repression",
				Type:  models.SectionText,
				Content: `Many of us learned early in life that certain emotions are unacceptable:
- Anger might have been discouraged or punished
- Sadness might have been seen as weakness
- Fear might have been dismissed

When we can't express these emotions, they don't disappear. They get pushed into the unconscious mind, where they can manifest as physical symptoms.`,
			},
			{
				ID:    "perfectionist-example",
				Title: "Example: The Perfectionist",
				Type:  models.SectionExample,
				Content: `Sarah is a perfectionist who never allows herself to feel angry. When her boss gives her unrealistic deadlines, instead of acknowledging her frustration, she pushes harder. Her unconscious mind, overwhelmed by repressed anger, creates back pain that forces her to slow down and rest.

The pain serves two purposes: it distracts her from the "unacceptable" anger and forces her to take a break she wouldn't otherwise allow herself.`,
			},
			{
				ID:    "breaking-the-cycle",
				Title: "Breaking the Cycle",
				Type:  models.SectionTip,
				Content: `The key to breaking this cycle is awareness. When you understand that your symptoms might be emotionally driven, you can:
- Acknowledge your true feelings
- Express emotions in healthy ways
- Reduce the need for physical distraction
- Allow your body to heal naturally`,
			},
		},
		KeyTakeaways: []string{
			"Mind and body are intimately connected through the nervous system",
			"Emotions can create real physical symptoms",
			"Repressed emotions often manifest as physical pain",
			"The autonomic nervous system responds to emotional stress",
			"Awareness and emotional expression can break the pain cycle",
		},
		PracticalExercises: []models.PracticalExercise{
			{
				ID:            "emotion-body-scan",
				Title:         "Emotion-Body Scan",
				Description:   "Learn to identify how emotions feel in your body",
				Type:          "reflection",
				EstimatedTime: 10,
				Instructions: []string{
					"Sit quietly and think about a recent stressful situation",
					"Notice what emotions come up (anger, fear, sadness, etc.)",
					"Scan your body from head to toe",
					"Notice any areas of tension, pain, or discomfort",
					"Make the connection between the emotion and physical sensation",
					"Breathe deeply and acknowledge both the emotion and the sensation",
				},
			},
		},
		ReflectionQuestions: []string{
			"What emotions do you find most difficult to acknowledge or express?",
			"Can you identify times when stress or emotions preceded physical symptoms?",
			"How did your family handle emotions when you were growing up?",
		},
		Quiz: &models.ModuleQuiz{
			ID: "mind-body-quiz",
			Questions: []models.QuizQuestion{
				{
					ID:            "q1",
					Question:      "The autonomic nervous system can be influenced by emotions.",
					Type:          "true_false",
					CorrectAnswer: "true",
					Explanation:   "The autonomic nervous system, which controls unconscious bodily functions, is directly influenced by our emotional state.",
					Points:        10,
				},
				{
					ID:       "q2",
					Question: "What happens to emotions that we don't express?",
					Type:     "multiple_choice",
					Options: []string{
						"They disappear completely",
						"They get stronger over time",
						"They get pushed into the unconscious mind",
						"They turn into positive emotions",
					},
					CorrectAnswer: "2",
					Explanation:   "Unexpressed emotions don't disappear. They get repressed into the unconscious mind where they can create physical symptoms.",
					Points:        10,
				},
			},
			PassingScore: 70,
		},
	},
	{
		ID:                  "personality-and-tms",
		Title:               "Personality Types and TMS",
		Category:            CategoryPersonality,
		Description:         "Understanding how certain personality traits predispose us to TMS",
		EstimatedReadTime:   25,
		Difficulty:          "intermediate",
		PrerequisiteModules: []string{"tms-intro", "mind-body-connection"},
		Sections: []models.ContentSection{
			{
				ID:    "tms-personality",
				Title: "The TMS Personality",
				Type:  models.SectionText,
				Content: `Dr. Sarno identified specific personality traits that make people more susceptible to TMS. These aren't character flaws. They're often admirable qualities that our society values. However, they can create internal pressure that leads to symptom development.

The most common TMS personality traits include:
- Perfectionism
- People-pleasing
- High responsibility and conscientiousness
- Self-criticism
- Need for control
- Difficulty expressing anger`,
			},
			{
				ID:    "perfectionist",
				Title: "The Perfectionist",
				Type:  models.SectionText,
				Content: `Perfectionists set impossibly high standards for themselves and others. They:
- Fear making mistakes
- Struggle with "good enough"
- Often procrastinate due to fear of imperfection
- Experience intense self-criticism
- May have learned that love was conditional on performance

This constant pressure creates enormous internal tension that can manifest as physical symptoms.`,
			},
			{
				ID:    "people-pleaser",
				Title: "The People-Pleaser",
				Type:  models.SectionText,
				Content: `People-pleasers prioritize others' needs over their own. They:
- Have difficulty saying "no"
- Fear conflict or disapproval
- Often feel resentful but don't express it
- May have learned that their worth depends on others' approval
- Struggle to identify their own needs and wants

The constant suppression of their own needs creates internal rage that must be expressed somehow, often through physical symptoms.`,
			},
			{
				ID:    "goodist",
				Title: `The "Goodist"`,
				Type:  models.SectionText,
				Content: `Dr. Sarno coined the term "goodist" to describe people who have an excessive need to be good, moral, and responsible. They:
- Take on more than their fair share of responsibility
- Feel guilty about normal human emotions like anger
- Often sacrifice their own well-being for others
- May have been raised with strict moral codes
- Struggle with self-compassion

This internal pressure to always be "good" creates enormous tension when normal human emotions arise.`,
			},
			{
				ID:    "recognizing-patterns",
				Title: "Recognizing Your Patterns",
				Type:  models.SectionTip,
				Content: `The goal isn't to completely change your personality. These traits often serve you well in many areas of life. Instead, the goal is to:
- Recognize when these patterns create internal pressure
- Allow yourself to be human and imperfect
- Express emotions in healthy ways
- Set appropriate boundaries
- Practice self-compassion`,
			},
		},
		KeyTakeaways: []string{
			"Certain personality traits predispose people to TMS",
			"Perfectionism and people-pleasing create internal pressure",
			"These traits are often admirable but can become problematic",
			"The goal is awareness and balance, not personality change",
			"Self-compassion is crucial for TMS recovery",
		},
		PracticalExercises: []models.PracticalExercise{
			{
				ID:            "personality-assessment",
				Title:         "TMS Personality Self-Assessment",
				Description:   "Identify which TMS personality traits apply to you",
				Type:          "reflection",
				EstimatedTime: 15,
				Instructions: []string{
					"Read through each personality trait description",
					"Rate how much each applies to you (1-10 scale)",
					"Identify your top 3 strongest traits",
					"Reflect on how these traits might create internal pressure",
					"Consider specific situations where these traits cause stress",
					"Write about one small way you could be gentler with yourself",
				},
			},
		},
		ReflectionQuestions: []string{
			"Which TMS personality traits do you recognize in yourself?",
			"How might these traits have developed in your childhood?",
			"In what situations do you feel the most internal pressure?",
			"What would it feel like to lower your standards just a little?",
		},
	},
	{
		ID:                  "emotional-exploration",
		Title:               "Exploring Repressed Emotions",
		Category:            CategoryEmotional,
		Description:         "Learning to identify and safely express suppressed feelings",
		EstimatedReadTime:   30,
		Difficulty:          "intermediate",
		PrerequisiteModules: []string{"mind-body-connection", "personality-and-tms"},
		Sections: []models.ContentSection{
			{
				ID:    "repressed-emotions",
				Title: "Understanding Repressed Emotions",
				Type:  models.SectionText,
				Content: `Repressed emotions are feelings that we've pushed out of conscious awareness because they feel too threatening, uncomfortable, or unacceptable. Common repressed emotions in TMS include:

- Rage and anger
- Deep sadness or grief
- Fear and anxiety
- Shame and guilt
- Feelings of powerlessness

These emotions don't disappear when repressed. They continue to exist in the unconscious mind, creating internal pressure that can manifest as physical symptoms.`,
			},
			{
				ID:    "rage-reservoir",
				Title: "The Rage Reservoir",
				Type:  models.SectionText,
				Content: `Dr. Sarno believed that unconscious rage was the primary emotion behind most TMS symptoms. This rage can come from:

- Current life stressors and pressures
- Childhood experiences and trauma
- Perfectionist self-imposed pressure
- Resentment from people-pleasing
- Feeling trapped or powerless

The rage is often completely unconscious. Many TMS patients are surprised to learn they might be angry, as they see themselves as calm, controlled people.`,
			},
			{
				ID:    "childhood-origins",
				Title: "Childhood Origins",
				Type:  models.SectionText,
				Content: `Many repressed emotions have their roots in childhood experiences:

- Being told that anger is "bad" or dangerous
- Learning that love is conditional on being "good"
- Having to be the responsible one in the family
- Experiencing trauma or neglect
- Being criticized for expressing emotions

These early experiences teach us which emotions are "safe" to feel and which must be hidden, even from ourselves.`,
			},
			{
				ID:    "safe-exploration",
				Title: "Safe Emotional Exploration",
				Type:  models.SectionTip,
				Content: `Exploring repressed emotions should be done gradually and safely:

- Start with journaling about current stressors
- Notice physical sensations that accompany emotions
- Practice self-compassion throughout the process
- Consider working with a therapist for deeper exploration
- Remember that feeling emotions doesn't mean acting on them
- Allow yourself to feel without judgment`,
			},
			{
				ID:    "emotional-expression",
				Title: "Healthy Expression Methods",
				Type:  models.SectionText,
				Content: `Once you identify repressed emotions, you need healthy ways to express them:

- Journaling and writing
- Physical exercise or movement
- Creative expression (art, music, dance)
- Talking with trusted friends or therapists
- Mindfulness and meditation
- Breathwork and body-based practices

The goal is to acknowledge and express emotions in ways that don't harm yourself or others.`,
			},
		},
		KeyTakeaways: []string{
			"Repressed emotions create internal pressure that can cause physical symptoms",
			"Unconscious rage is often the primary emotion behind TMS",
			"Many emotional patterns originate in childhood experiences",
			"Emotions need to be acknowledged and expressed, not eliminated",
			"Safe exploration and expression are key to TMS recovery",
		},
		PracticalExercises: []models.PracticalExercise{
			{
				ID:            "anger-exploration",
				Title:         "Anger Exploration Exercise",
				Description:   "Safely explore and express anger",
				Type:          "journaling",
				EstimatedTime: 20,
				Instructions: []string{
					"Find a private space where you won't be interrupted",
					"Write about things that make you angry, starting with small irritations",
					"Allow yourself to write freely without censoring",
					`Include things you "shouldn't" be angry about`,
					"Notice any physical sensations as you write",
					"End by acknowledging that anger is a normal, healthy emotion",
				},
			},
			{
				ID:            "childhood-emotions",
				Title:         "Childhood Emotion Patterns",
				Description:   "Explore how you learned to handle emotions",
				Type:          "reflection",
				EstimatedTime: 25,
				Instructions: []string{
					"Think about your childhood family environment",
					"How were different emotions handled? (anger, sadness, fear, joy)",
					"What messages did you receive about expressing emotions?",
					"Which emotions felt safe to express? Which didn't?",
					"How do these patterns show up in your adult life?",
					"Write a compassionate letter to your childhood self",
				},
			},
		},
		ReflectionQuestions: []string{
			"What emotions do you find most difficult to acknowledge?",
			"How did your family handle anger and conflict?",
			"What would happen if you allowed yourself to feel angry?",
			"What childhood experiences might have shaped your emotional patterns?",
		},
	},
	{
		ID:                  "recovery-process",
		Title:               "The TMS Recovery Process",
		Category:            CategoryRecovery,
		Description:         "Practical steps for healing and preventing symptom recurrence",
		EstimatedReadTime:   35,
		Difficulty:          "intermediate",
		PrerequisiteModules: []string{"tms-intro", "mind-body-connection", "emotional-exploration"},
		Sections: []models.ContentSection{
			{
				ID:    "recovery-overview",
				Title: "Understanding Recovery",
				Type:  models.SectionText,
				Content: `TMS recovery is not a linear process. It's a journey of increasing self-awareness and emotional freedom. Recovery typically involves:

- Accepting the TMS diagnosis
- Understanding your personal triggers and patterns
- Developing emotional awareness and expression skills
- Gradually resuming feared activities
- Building new, healthier thought patterns
- Preventing symptom recurrence

Most people experience improvement within weeks to months, though the timeline varies for each individual.`,
			},
			{
				ID:    "accepting-diagnosis",
				Title: "Accepting the TMS Diagnosis",
				Type:  models.SectionText,
				Content: `The first step in recovery is truly accepting that your symptoms are TMS-related. This can be challenging because:

- It goes against everything we've been told about pain
- It requires taking responsibility for our emotional health
- It means letting go of the "structural" explanation
- It can feel like others won't believe us

However, acceptance is crucial because it shifts your focus from fixing your body to understanding your emotions.`,
			},
			{
				ID:    "resuming-activities",
				Title: "Resuming Physical Activities",
				Type:  models.SectionText,
				Content: `An important part of TMS recovery is gradually resuming activities you've been avoiding due to pain:

- Start with activities that feel manageable
- Remind yourself that movement is safe
- Expect some fear and discomfort initially
- Focus on the emotional aspects, not just the physical
- Celebrate small victories
- Don't rush the process

The goal is to prove to your unconscious mind that you're not fragile or damaged.`,
			},
			{
				ID:    "daily-practices",
				Title: "Daily Recovery Practices",
				Type:  models.SectionText,
				Content: `Successful TMS recovery often involves developing daily practices:

- Morning intention setting
- Regular journaling or emotional check-ins
- Mindfulness or meditation practice
- Physical movement or exercise
- Stress management techniques
- Evening reflection and gratitude

These practices help maintain emotional awareness and prevent symptom recurrence.`,
			},
			{
				ID:    "setbacks-and-relapses",
				Title: "Handling Setbacks",
				Type:  models.SectionWarning,
				Content: `Setbacks are a normal part of TMS recovery. When symptoms return:

- Don't panic, this is part of the process
- Look for emotional triggers or stressors
- Return to your recovery practices
- Remind yourself of what you've learned
- Be patient and compassionate with yourself
- Consider if you need additional support

Setbacks often provide valuable information about your triggers and patterns.`,
			},
			{
				ID:    "long-term-prevention",
				Title: "Long-term Prevention",
				Type:  models.SectionTip,
				Content: `To prevent TMS recurrence:

- Maintain regular emotional check-ins
- Continue expressing emotions in healthy ways
- Set appropriate boundaries in relationships
- Practice self-compassion and stress management
- Stay connected to your body and its signals
- Seek support when facing major life stressors

Remember, recovery is an ongoing process of emotional growth and self-awareness.`,
			},
		},
		KeyTakeaways: []string{
			"Recovery involves accepting the TMS diagnosis and focusing on emotions",
			"Gradually resuming feared activities is crucial for healing",
			"Daily practices support ongoing emotional awareness",
			"Setbacks are normal and provide valuable learning opportunities",
			"Long-term prevention requires ongoing emotional self-care",
		},
		PracticalExercises: []models.PracticalExercise{
			{
				ID:            "activity-resumption",
				Title:         "Gradual Activity Resumption Plan",
				Description:   "Create a plan for safely resuming avoided activities",
				Type:          "physical",
				EstimatedTime: 30,
				Instructions: []string{
					"List activities you've been avoiding due to pain",
					"Rank them from least to most feared",
					"Choose the least feared activity to start with",
					`Set a specific, small goal (e.g., "walk for 10 minutes")`,
					"Before the activity, remind yourself that you're safe",
					"During the activity, focus on the emotional aspects",
					"After the activity, celebrate your courage regardless of pain levels",
				},
			},
			{
				ID:            "daily-practice-routine",
				Title:         "Design Your Daily Practice",
				Description:   "Create a personalized daily routine for TMS recovery",
				Type:          "reflection",
				EstimatedTime: 20,
				Instructions: []string{
					"Choose 3-5 practices that resonate with you",
					"Decide on specific times for each practice",
					"Start with just 5-10 minutes per practice",
					"Create reminders or cues to help you remember",
					"Plan for obstacles and how you'll overcome them",
					"Commit to trying your routine for one week",
				},
			},
		},
		ReflectionQuestions: []string{
			"What activities have you been avoiding due to pain?",
			"What fears come up when you think about resuming these activities?",
			"What daily practices would best support your emotional health?",
			"How will you handle setbacks with compassion?",
		},
	},
}

// ModuleByID returns the module or nil when the id is unknown.
func ModuleByID(id string) *models.EducationalModule {
	for i := range Modules {
		if Modules[i].ID == id {
			return &Modules[i]
		}
	}
	return nil
}

func ModulesByCategory(category string) []models.EducationalModule {
	var out []models.EducationalModule
	for _, m := range Modules {
		if m.Category == category {
			out = append(out, m)
		}
	}
	return out
}
