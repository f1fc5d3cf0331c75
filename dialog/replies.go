package dialog

import "github.com/rynalabs/ryna/core"

// dealerPhone is the contact number handed out for site visits and calls.
const dealerPhone = "7982323147"

const (
	greetingReply = "Hello! Great to meet you! I'm here to help you find the perfect property. " +
		"Are you looking to buy or rent? And do you have a specific location in mind?"

	identityReply = "I'm Ryna, your dedicated real estate assistant! I specialize in helping people " +
		"find their ideal properties. I can search our listings, provide market insights, answer " +
		"pricing questions, and guide you step-by-step through your property search. How can I " +
		"assist you today?"

	thanksReply = "You're very welcome! I'm happy to help. Is there anything else about properties " +
		"or real estate that I can assist you with?"

	helpReply = "I'd be happy to help! I can assist you with:\n" +
		"- Finding properties based on your criteria\n" +
		"- Providing price information and market insights\n" +
		"- Answering questions about specific locations\n" +
		"- Guiding you through a step-by-step search\n" +
		"- Connecting you with our dealer at " + dealerPhone + "\n\n" +
		"What would you like to explore?"

	contactReply = "You can contact our property dealer directly at " + dealerPhone + ". " +
		"They're available 9 AM - 8 PM for property inquiries, site visits, and detailed discussions."

	offTopicReply = "I'm here to help you with real estate! You can ask me things like:\n" +
		"- \"Show me 2 BHK apartments in Mumbai\"\n" +
		"- \"What's the average price in Goa?\"\n" +
		"- \"I'm looking for a house under 50 lakhs\"\n" +
		"- Or ask for a guided search!\n\n" +
		"What type of property are you interested in?"

	noResultsReply = "Sorry, no properties found matching your criteria."

	noGuidedResultsReply = "Sorry, I could not find properties matching those filters."

	noRecommendationReply = "I couldn't find properties matching those exact criteria. Let me help " +
		"you by adjusting your search. Could you tell me your preferred location and budget range?"

	noStatsReply = "I don't have price data for those specific criteria yet. Could you try a " +
		"different location or let me show you our available listings?"
)

// cannedReply maps a conversational intent to its fixed response.
func cannedReply(in core.Intent) string {
	switch in {
	case core.IntentGreeting:
		return greetingReply
	case core.IntentIdentityQuery:
		return identityReply
	case core.IntentThanks:
		return thanksReply
	case core.IntentHelpRequest:
		return helpReply
	case core.IntentContactRequest:
		return contactReply
	default:
		return offTopicReply
	}
}
