package vision

// extractionPrompt instructs the generative model to return detected food
// items as a single JSON object.
const extractionPrompt = `
Analysiere dieses Bild eines Einkaufswagens, Kühlschranks oder einer Speisekammer.

AUFGABE: Erkenne alle sichtbaren Lebensmittel und Getränke mit höchster Genauigkeit.

FÜR JEDES ERKANNTE PRODUKT:
- Produktname (auf Deutsch, spezifisch wie möglich)
- Kategorie (Obst, Gemüse, Fleisch, Milchprodukte, Getreideprodukte, Getränke, Sonstiges)
- Geschätzte Menge/Anzahl (wenn erkennbar)
  - Für Produkte, die typischerweise in Bündeln verkauft werden (z. B. Champignons, Radieschen, Karotten): Gib die Anzahl der Bündel an (z. B. "1x" für ein Bündel).
  - Für Produkte, die einfach einzeln gezählt werden können (z. B. Milchtüten, Bananen, Äpfel, Packungen von Nüssen): Gib die genaue Anzahl an.
- Einheit (Stück, kg, Liter, Packung, Becher, etc.)
- Vertrauenswert (1-100)

IGNORIERE:
- Verpackungen ohne erkennbaren Inhalt
- Nicht-Lebensmittel (Reinigungsmittel, Kosmetik, etc.)
- Unklare oder unsichere Objekte (unter 60% Sicherheit)
- Duplikate

ANTWORT NUR ALS GÜLTIGES JSON:
{
  "detectedItems": [
    {
      "name": "Produktname auf Deutsch",
      "category": "Kategorie",
      "quantity": Anzahl,
      "unit": "Einheit",
      "confidence": Vertrauenswert_1_bis_100
    }
  ]
}

Falls keine Lebensmittel erkennbar sind, gib eine leere Liste zurück.
`
