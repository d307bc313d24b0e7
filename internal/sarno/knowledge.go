package sarno

import "github.com/tms-recovery/backend/internal/models"

// KnowledgeEntry is a canned answer matched by category or keyword overlap.
type KnowledgeEntry struct {
	Question string
	Response string
	Category string
	Keywords []string
}

// CaseExample pairs a patient scenario with the counselor's framing of it.
type CaseExample struct {
	Scenario             string
	Response             string
	Category             string
	ApplicableConditions []string
}

type Contraindication struct {
	Condition      string
	Response       string
	ReferralNeeded bool
}

type Technique struct {
	Name         string
	Description  string
	Instructions string
}

// crisisKeywords short-circuit every other rule. A match produces a
// fixed crisis reply and nothing else.
var crisisKeywords = []string{
	"suicide", "kill myself", "end it all", "not worth living",
	"hurt myself", "self-harm", "overdose", "can't go on",
}

// medicalKeywords route the user to medical care before any coaching.
var medicalKeywords = []string{
	"fever", "infection", "bladder", "bowel", "weakness getting worse",
	"can't walk", "numbness spreading", "emergency", "accident",
}

// CoreTeachings maps topic keys to ordered teaching statements. The first
// statement of a matched topic is used as a response snippet.
var CoreTeachings = map[string][]string{
	"tmstheory": {
		"TMS is a psychosomatic disorder - real physical pain caused by emotional and psychological factors, not structural abnormalities.",
		"The unconscious mind creates physical symptoms to distract from repressed emotions, particularly anger and rage.",
		"Most chronic pain conditions are TMS, not structural problems, despite what medical tests might suggest.",
		"The brain reduces blood flow to muscles, tendons, and nerves, creating oxygen deprivation and pain.",
		"Knowledge and awareness of this process is often sufficient to eliminate the pain.",
	},
	"mindbody": {
		"The mind and body are not separate entities - they function as one integrated system.",
		"Emotions have direct physical effects on the body through the autonomic nervous system.",
		"Repressed emotions, especially anger, create tension that manifests as physical symptoms.",
		"The unconscious mind is far more powerful than we realize in creating physical symptoms.",
		"Healing requires addressing both the physical symptoms and underlying emotional causes.",
	},
	"psychological": {
		"Perfectionism and the need to be 'good' create enormous internal pressure and rage.",
		"People-pleasing behavior leads to suppressed anger and resentment.",
		"High achievers and conscientious individuals are particularly susceptible to TMS.",
		"Childhood experiences and family dynamics often create patterns that lead to TMS.",
		"Current life stressors can trigger TMS symptoms, but the roots usually go deeper.",
	},
	"treatment": {
		"Education about TMS is the primary treatment - knowledge is the cure.",
		"Resume normal physical activities despite pain - the pain cannot hurt you.",
		"Stop all physical treatments that reinforce the structural diagnosis.",
		"Focus on identifying and expressing repressed emotions, particularly anger.",
		"Practice psychological techniques to address underlying emotional issues.",
	},
}

var CommonQuestions = []KnowledgeEntry{
	{
		Question: "How do I know if my pain is TMS or something structural?",
		Response: "The key indicators of TMS include: pain that moves around, varies in intensity, is worse during stress, began during emotional turmoil, and persists despite normal medical tests. If multiple doctors can't find a clear structural cause, and especially if you're a perfectionist or people-pleaser, it's very likely TMS. However, it's important to have proper medical evaluation first to rule out serious conditions.",
		Category: "diagnosis",
		Keywords: []string{"structural", "diagnosis", "tms", "medical tests", "pain patterns"},
	},
	{
		Question: "I'm afraid to exercise because of my pain. What should I do?",
		Response: "This fear is exactly what TMS wants - it keeps you focused on the physical and prevents healing. The pain cannot hurt you or cause damage when it's TMS. Start gradually, but start moving. The goal is to demonstrate to your unconscious mind that you're not afraid of the pain. Begin with gentle activities and progressively increase. The pain may initially worsen as your unconscious 'protests,' but persist. Movement is medicine for TMS.",
		Category: "treatment",
		Keywords: []string{"exercise", "fear", "movement", "activity", "physical therapy"},
	},
	{
		Question: "How long does it take to recover from TMS?",
		Response: "Recovery varies greatly. Some people experience immediate relief upon understanding TMS - I've seen patients become pain-free during our first consultation. Others take weeks or months. The key factors are: how quickly you accept the diagnosis, how well you identify your emotional issues, and how completely you resume normal activities. Don't focus on the timeline - focus on the process. Impatience itself can perpetuate TMS.",
		Category: "recovery",
		Keywords: []string{"recovery", "healing", "timeline", "patience"},
	},
	{
		Question: "What emotions should I look for?",
		Response: "Start with anger - it's the most common repressed emotion in TMS. Look for anger at yourself for being imperfect, anger at others for their demands or behavior, anger at life circumstances. Also examine guilt, anxiety, fear, and sadness. Many TMS patients are 'too good' to feel angry, so they push it into the unconscious. Make a list: what makes you angry? What did you never allow yourself to feel angry about? The goal isn't to act on anger, but to acknowledge and feel it.",
		Category: "emotions",
		Keywords: []string{"anger", "emotions", "repressed", "feelings", "unconscious"},
	},
	{
		Question: "Should I continue physical therapy or stop all treatments?",
		Response: "If you're convinced you have TMS, I recommend stopping treatments that reinforce the structural diagnosis - physical therapy, massage, chiropractic adjustments, special exercises. These treatments, while well-intentioned, send the message that something is wrong with your body. Instead, resume normal activities. However, if you're not fully convinced about TMS, continue treatments while you learn more. The key is your mindset - are you treating a structural problem or addressing TMS?",
		Category: "treatment",
		Keywords: []string{"physical therapy", "treatment", "structural", "stop treatments"},
	},
	{
		Question: "My doctor says I need surgery. Could this still be TMS?",
		Response: "This is a crucial decision that requires careful consideration. Many surgeries for back pain are unnecessary because the structural abnormalities shown on MRIs are normal age-related changes, not the cause of pain. However, some conditions do require surgery. Get multiple opinions, especially from doctors familiar with TMS. Ask: Is this an emergency? Will waiting cause permanent damage? Are the structural findings severe enough to cause this much pain? Remember, most people with herniated discs have no pain at all.",
		Category: "medical",
		Keywords: []string{"surgery", "doctor", "mri", "structural abnormalities", "second opinion"},
	},
}

var CaseExamples = []CaseExample{
	{
		Scenario:             "A perfectionist executive with chronic back pain that started during a stressful work period",
		Response:             "This is a classic TMS presentation. Your unconscious mind is creating back pain to distract you from the enormous rage you feel about the pressures in your life. As a perfectionist, you probably don't allow yourself to feel angry about unreasonable demands or your own impossibly high standards. The pain serves as a socially acceptable way to express distress. Focus on identifying what you're really angry about - not just work stress, but deeper issues about control, approval, and self-worth.",
		Category:             "perfectionism",
		ApplicableConditions: []string{"back pain", "work stress", "perfectionism"},
	},
	{
		Scenario:             "A person whose pain moves from back to neck to shoulders",
		Response:             "The fact that your pain moves around is excellent evidence that this is TMS, not a structural problem. Structural problems don't migrate - herniated discs don't jump from your back to your neck! Your unconscious mind is very clever and will move the pain to keep you focused on the physical. This is actually good news because it confirms the diagnosis. Don't chase the pain with treatments - address the underlying emotional issues that are driving it.",
		Category:             "symptom_patterns",
		ApplicableConditions: []string{"migrating pain", "multiple locations"},
	},
	{
		Scenario:             "Someone who's tried everything - doctors, physical therapy, medications - with no relief",
		Response:             "The fact that nothing has worked is actually strong evidence for TMS. If this were truly structural, some of these treatments would have provided lasting relief. Your unconscious mind is very powerful and won't be fooled by treatments aimed at the body when the problem is in the mind. This isn't a failure of medicine - it's a misunderstanding of what you're dealing with. The good news is that TMS is completely curable once you understand and address it properly.",
		Category:             "treatment_failure",
		ApplicableConditions: []string{"chronic pain", "treatment resistant"},
	},
}

var Contraindications = []Contraindication{
	{
		Condition:      "Recent trauma or injury",
		Response:       "If your pain began immediately after a significant injury or accident, you need proper medical evaluation first. While TMS can develop after trauma, acute injuries require medical attention. Once structural damage is ruled out or has healed, persistent pain may indeed be TMS.",
		ReferralNeeded: true,
	},
	{
		Condition:      "Progressive neurological symptoms",
		Response:       "Weakness, numbness, or loss of function that's getting worse requires immediate medical evaluation. This is not TMS. Please see a physician immediately, preferably a neurologist.",
		ReferralNeeded: true,
	},
	{
		Condition:      "Fever with back pain",
		Response:       "Fever combined with back pain can indicate serious infection. This requires immediate medical attention. TMS does not cause fever.",
		ReferralNeeded: true,
	},
	{
		Condition:      "Bowel or bladder dysfunction",
		Response:       "Any problems with bowel or bladder control require emergency medical evaluation. This could indicate serious nerve compression. Please go to an emergency room immediately.",
		ReferralNeeded: true,
	},
}

// ClosingExpressions end each non-safety reply. One is chosen at random.
var ClosingExpressions = []string{
	"The pain is real, but it's not structural.",
	"Knowledge is the cure.",
	"Your unconscious mind is very clever.",
	"This is good news - TMS is completely curable.",
	"Don't be afraid of the pain - it cannot hurt you.",
	"Resume your normal activities despite the pain.",
	"What are you really angry about?",
	"The pain is a distraction from your emotions.",
	"You're too good to feel angry, so you repress it.",
	"Think psychological, not physical.",
	"The pain serves a purpose - what is it protecting you from feeling?",
}

var Techniques = []Technique{
	{
		Name:         "Daily Reminders",
		Description:  "Remind yourself daily that the pain is TMS, not structural",
		Instructions: "Each morning, tell yourself: 'This pain is TMS. It's caused by repressed emotions, not structural problems. I will not be afraid of it.'",
	},
	{
		Name:         "Emotion Journaling",
		Description:  "Write about your emotions, especially anger and frustration",
		Instructions: "Spend 20 minutes daily writing about what makes you angry, frustrated, or sad. Don't censor yourself - let the emotions flow onto paper.",
	},
	{
		Name:         "Talking to Your Brain",
		Description:  "Directly address your unconscious mind",
		Instructions: "When pain occurs, say firmly: 'I know what you're doing. You're trying to distract me from my emotions. I'm not afraid of you, and I won't be distracted.'",
	},
	{
		Name:         "Resume Activities",
		Description:  "Gradually return to all normal physical activities",
		Instructions: "Make a list of activities you've stopped due to pain. Begin doing them again, starting gently but progressively increasing. The goal is to show your unconscious you're not afraid.",
	},
	{
		Name:         "Stress and Anger Inventory",
		Description:  "Identify sources of repressed emotions",
		Instructions: "List all current and past sources of stress, anger, and frustration. Include childhood experiences, relationship issues, work stress, and self-imposed pressures.",
	},
}

var crisisResources = []models.ChatResource{
	{
		Type:        "referral",
		Title:       "988 Suicide & Crisis Lifeline",
		Description: "Free and confidential emotional support 24/7",
		URL:         "tel:988",
	},
}

var medicalResources = []models.ChatResource{
	{
		Type:        "referral",
		Title:       "Emergency Medical Care",
		Description: "Seek immediate medical evaluation",
		URL:         "tel:911",
	},
}
