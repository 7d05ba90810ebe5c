package answers

import "strings"

// topicEntry pairs a set of trigger keywords with a pre-written explanation.
// Entries are evaluated in order and the first hit wins, so the slice order
// is a priority ranking (a query mentioning both "rag" and "ai" gets the RAG
// answer because RAG is listed first).
type topicEntry struct {
	Keywords []string
	Answer   string
}

var topics = []topicEntry{
	{
		Keywords: []string{"rag", "retrieval", "augmented", "generation"},
		Answer:   "RAG (Retrieval-Augmented Generation) is a technique that enhances AI responses by retrieving relevant information from external knowledge bases before generating answers. It combines the power of large language models with up-to-date, domain-specific knowledge, making responses more accurate and contextual.",
	},
	{
		Keywords: []string{"llm", "large", "language", "model"},
		Answer:   "Large Language Models (LLMs) are AI systems trained on massive amounts of text data to understand and generate human-like text. Examples include GPT-4, Claude, and Gemini. They excel at tasks like text generation, summarization, translation, and question answering.",
	},
	{
		Keywords: []string{"prompt", "engineering", "prompting"},
		Answer:   "Prompt Engineering is the art of crafting effective inputs (prompts) to get desired outputs from AI models. Key techniques include: clear instructions, few-shot examples, chain-of-thought reasoning, and role-playing. Mastering prompts significantly improves AI model performance.",
	},
	{
		Keywords: []string{"transformer", "attention", "architecture"},
		Answer:   "Transformers are neural network architectures that use self-attention mechanisms to process sequential data. Introduced in \"Attention Is All You Need\" (2017), they revolutionized NLP and form the foundation of modern LLMs. Key components include multi-head attention and positional encoding.",
	},
	{
		Keywords: []string{"fine", "tuning", "finetune"},
		Answer:   "Fine-tuning is the process of taking a pre-trained model and training it further on domain-specific data. This allows models to specialize in particular tasks or industries while retaining their general capabilities. Common approaches include full fine-tuning, LoRA, and QLoRA.",
	},
	{
		Keywords: []string{"embedding", "vector", "semantic"},
		Answer:   "Embeddings are numerical representations of text (or other data) in high-dimensional vector space. Similar concepts are placed close together in this space, enabling semantic search, clustering, and recommendation systems. Popular embedding models include OpenAI Ada and Sentence-BERT.",
	},
	{
		Keywords: []string{"ai", "artificial", "intelligence", "machine", "learning"},
		Answer:   "Artificial Intelligence (AI) is the simulation of human intelligence by machines. Machine Learning (ML), a subset of AI, enables systems to learn from data without explicit programming. Deep Learning, using neural networks, has driven recent AI breakthroughs in vision, language, and more.",
	},
}

const defaultAnswer = "That's an interesting question about AI! While I don't have a specific pre-built answer for this topic, I recommend exploring the learning resources provided. They cover fundamental AI concepts that will help you understand this better."

// ForQuery returns the canned explanation for the first topic whose keywords
// appear in the query, or the default answer when nothing matches. Matching
// is case-insensitive substring containment.
func ForQuery(query string) string {
	queryLower := strings.ToLower(query)

	for _, topic := range topics {
		for _, keyword := range topic.Keywords {
			if strings.Contains(queryLower, keyword) {
				return topic.Answer
			}
		}
	}

	return defaultAnswer
}

// Default returns the fallback answer used when no topic matches.
func Default() string {
	return defaultAnswer
}
