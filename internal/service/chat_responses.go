package service

// 客服机器人的预置话术。按规则顺序逐条匹配，命中任一关键词即回复，
// 全部未命中时返回兜底话术。

// chatRule 关键词匹配规则
type chatRule struct {
	keywords []string
	reply    string
}

// ChatGreeting 会话开场白
const ChatGreeting = "Hi! I'm your AI assistant. I'm here to help you find the perfect refurbished phone and answer any questions you have! 👋\n\nWhat can I help you with today?"

// ChatDefaultReply 未命中任何关键词时的兜底话术
const ChatDefaultReply = "I'm here to help with any questions about our refurbished phones! I can assist with:\n\n• Product information and comparisons\n• Shipping and return policies\n• Technical specifications\n• Order status and support\n• Warranty and condition details\n\nWhat would you like to know? 😊"

// ChatQuickQuestions 快捷提问（按展示顺序）
var ChatQuickQuestions = []string{
	"What's the difference between conditions?",
	"Do you offer warranty?",
	"How does shipping work?",
	"Can I return a phone?",
	"What payment methods do you accept?",
	"Are the phones unlocked?",
}

// chatRules 匹配规则表：先整句话术，再按主题关键词，顺序即优先级
var chatRules = []chatRule{
	{
		keywords: []string{"what's the difference between conditions"},
		reply:    "Great question! Here's how we grade our phones:\n\n• **Excellent**: Like new with minimal signs of use\n• **Very Good**: Minor cosmetic wear, perfect functionality\n• **Good**: Some visible wear but fully functional\n• **Fair**: Noticeable wear but great value\n\nAll phones are thoroughly tested regardless of condition!",
	},
	{
		keywords: []string{"do you offer warranty"},
		reply:    "Yes! All our refurbished phones come with:\n\n• **12-month warranty** covering defects\n• **30-day return policy** if you're not satisfied\n• **Free technical support** via chat or phone\n• **Quality guarantee** - every phone is tested\n\nYour peace of mind is our priority! 🛡️",
	},
	{
		keywords: []string{"how does shipping work"},
		reply:    "We make shipping simple:\n\n• **Free shipping** on orders over $50\n• **2-3 business days** standard delivery\n• **Next-day delivery** available for $15\n• **Tracking included** with all orders\n• **Secure packaging** to protect your phone\n\nOrders placed before 2PM ship same day! 📦",
	},
	{
		keywords: []string{"can i return a phone"},
		reply:    "Our return policy is customer-friendly:\n\n• **30 days** to return for any reason\n• **Free return shipping** with prepaid label\n• **Full refund** processed within 3-5 days\n• **No restocking fees** ever\n• **Original packaging** not required\n\nWe want you to be 100% happy with your purchase! ✅",
	},
	{
		keywords: []string{"what payment methods do you accept"},
		reply:    "We accept all major payment methods:\n\n• **Credit/Debit Cards** (Visa, Mastercard, Amex)\n• **PayPal** for secure checkout\n• **Apple Pay** & **Google Pay**\n• **Buy now, pay later** with Klarna\n• **Bank transfers** for large orders\n\nAll payments are secured with 256-bit encryption! 🔒",
	},
	{
		keywords: []string{"are the phones unlocked"},
		reply:    "Most of our phones are unlocked! Here's what you need to know:\n\n• **95% of phones** are factory unlocked\n• **Works with all carriers** (Verizon, AT&T, T-Mobile, etc.)\n• **International compatibility** for travel\n• **Carrier-locked phones** are clearly marked\n• **Free unlock service** available if needed\n\nCheck the product page for specific carrier info! 📱",
	},
	{
		keywords: []string{"iphone", "apple"},
		reply:    "We have a great selection of refurbished iPhones! From iPhone 12 to iPhone 14 Pro, all in excellent condition. Would you like me to show you our current iPhone deals? 📱✨",
	},
	{
		keywords: []string{"samsung", "galaxy"},
		reply:    "Samsung Galaxy phones are very popular! We carry Galaxy S22, S23, Note series, and more. All come with S Pen (for Note/Ultra models) and are thoroughly tested. What Samsung model interests you? 🌟",
	},
	{
		keywords: []string{"google", "pixel"},
		reply:    "Google Pixel phones offer the purest Android experience! Great cameras, fast updates, and AI features. We have Pixel 6, 7, and 8 series available. Need help choosing? 📸🤖",
	},
	{
		keywords: []string{"price", "cost", "cheap"},
		reply:    "Our refurbished phones offer amazing value! Prices start from $199 and go up to $899 for flagship models. You save 30-50% compared to new phones while getting the same great experience! 💰",
	},
	{
		keywords: []string{"battery", "performance"},
		reply:    "All our phones undergo battery testing! We ensure:\n\n• Battery health above 80%\n• Performance testing for smooth operation\n• Full functionality check\n• Software optimization\n\nMost phones perform like new! 🔋⚡",
	},
	{
		keywords: []string{"compare", "difference"},
		reply:    "I'd love to help you compare phones! You can use our comparison tool to see side-by-side specs, or tell me which models you're considering and I'll highlight the key differences. What phones are you looking at? 🔍",
	},
	{
		keywords: []string{"hello", "hi", "hey"},
		reply:    "Hello! Great to meet you! 😊 I'm here to help you find the perfect refurbished phone. Are you looking for a specific brand or have any questions about our products?",
	},
	{
		keywords: []string{"thank", "thanks"},
		reply:    "You're very welcome! I'm always happy to help. Is there anything else you'd like to know about our phones or services? 😊",
	},
}
