package ai

import "fmt"

// renderDiagnosisPrompt is the fixed instruction sent with every leaf image.
func renderDiagnosisPrompt(cropHint string) string {
	if cropHint == "" {
		cropHint = "any crop"
	}
	return fmt.Sprintf(`You are the AGROW Lens AI. Analyze this leaf image.
The farmer's primary interest is %s.
Identify:
1. Exact Plant Species.
2. Health Condition (Healthy, diseased, or pest attack).
3. If diseased, identify the exact disease.
4. Detailed remediation (Organic and Chemical).
5. Common Name of the plant.

Return ONLY a JSON object:
{
  "identifiedCrop": "The name of the plant seen",
  "commonName": "Common local name of the plant (e.g. Neem, Tomato, Basil)",
  "condition": "Specific Name of disease or 'Healthy'",
  "scientificName": "Latin name",
  "status": "Healthy" | "Action Needed" | "Critical" | "Unknown",
  "advice": "General advice",
  "symptoms": ["list", "of", "symptoms"],
  "treatmentOrganic": "detailed organic solution",
  "treatmentChemical": "detailed chemical solution",
  "confidence": 0.0-1.0
}`, cropHint)
}
