package ai

// prompts.go holds the natural-language prompts sent to the models. Keeping
// them in one file makes them easy to tweak without touching the adapter
// logic.

import (
	"encoding/json"
	"fmt"

	"healthmate-server/internal/models"
)

const analyzePromptTemplate = `You are a medical AI assistant analyzing a patient's medical report.
Extract key information and generate intelligent questions.

Report text: %s

Analyze the report and return a JSON response with:
- keyFindings: Array of key medical findings from the report
- potentialConditions: Array of possible conditions based on the findings
- urgencyLevel: "low", "medium", or "high" based on the severity
- questions: Array of 3-5 relevant questions to ask the patient to better understand their condition

Make questions specific to the medical issues mentioned in the report.
Questions should help gather additional context about symptoms, duration, triggers, etc.`

const personalReportPromptTemplate = `Generate a personal medical report for a patient in simple, easy-to-understand language.

Original Report: %s
Analysis: %s
Patient Responses: %s

Create a comprehensive report that includes:
1. What the problem is (in simple terms)
2. What might be causing it
3. Recommended treatments (in simple language)
4. Practical advice for getting better faster
5. When to seek immediate medical attention

Use everyday language that anyone can understand. Avoid medical jargon.
Be supportive and encouraging in tone.

Return JSON with:
- content: The full report text
- recommendations: Array of practical health advice`

const professionalReportPromptTemplate = `Generate a professional medical report using proper medical terminology for healthcare providers.

Original Report: %s
Analysis: %s
Patient Responses: %s

Create a comprehensive professional report that includes:
1. Clinical assessment and findings
2. Differential diagnosis considerations
3. Recommended diagnostic procedures (if applicable)
4. Treatment protocol suggestions
5. Prognosis and follow-up recommendations

Use appropriate medical terminology and maintain professional clinical language.
Include relevant clinical indicators and evidence-based recommendations.

Return JSON with:
- content: The full professional report text
- recommendations: Array of clinical recommendations`

const chatSystemPromptEnglish = `You are HealthMate, a highly experienced and compassionate AI health assistant. You answer all types of health-related questions:
- All types of medicines (usage, dosage, side effects, precautions)
- Diseases and health conditions (symptoms, causes, prevention)
- Symptom explanations (pain, fever, cough, digestive issues, mental health)
- Health and lifestyle advice (diet, exercise, sleep, stress management)
- Home remedies and natural treatments
- Medical tests and report interpretations

Important guidelines:
- Always respond in clear, simple English
- Provide practical and useful information
- Show empathy and understanding in explanations
- Recommend immediate medical attention for serious cases
- Never diagnose, only provide educational information
- If you don't know something, honestly admit it`

const chatSystemPromptHindi = `आप HealthMate हैं, एक बहुत ही अनुभवी और दयालु AI स्वास्थ्य सहायक। आप हर प्रकार के स्वास्थ्य सवालों का जवाब देते हैं: दवाएं, बीमारियां, लक्षण, जीवनशैली की सलाह, घरेलू उपचार, और चिकित्सा रिपोर्ट की जानकारी।

महत्वपूर्ण निर्देश:
- हमेशा साफ और सरल हिंदी में उत्तर दें
- व्यावहारिक और उपयोगी जानकारी दें
- समझाने में रोगी के साथ सहानुभूति दिखाएं
- गंभीर मामलों में तुरंत डॉक्टर से मिलने की सलाह दें
- कभी भी निदान न करें, केवल शैक्षिक जानकारी दें`

// disclaimer is appended to every generated report body.
const disclaimer = "**DISCLAIMER: This is an AI-generated report and should not replace professional medical advice. Please consult with qualified healthcare providers for medical decisions.**"

func analyzePrompt(reportText string) string {
	return fmt.Sprintf(analyzePromptTemplate, reportText)
}

func reportPrompt(kind models.ReportKind, data *models.ReportData) string {
	template := personalReportPromptTemplate
	if kind == models.ReportProfessional {
		template = professionalReportPromptTemplate
	}
	analysisJSON, _ := json.Marshal(data.Analysis)
	responsesJSON, _ := json.Marshal(data.PatientResponses)
	return fmt.Sprintf(template, data.OriginalReport, analysisJSON, responsesJSON)
}

func chatPrompt(question string, lang models.Language) string {
	if lang == models.LanguageHindi {
		return chatSystemPromptHindi + "\n\n" +
			fmt.Sprintf("स्वास्थ्य प्रश्न: %s\n\nकृपया इस प्रश्न का विस्तृत और उपयोगी उत्तर हिंदी में दें। अगर यह दवा, बीमारी, या लक्षण के बारे में है, तो पूरी जानकारी दें।", question)
	}
	return chatSystemPromptEnglish + "\n\n" +
		fmt.Sprintf("Health question: %s\n\nPlease provide a detailed and helpful answer in English. If it's about medicine, disease, or symptoms, give comprehensive information.", question)
}
