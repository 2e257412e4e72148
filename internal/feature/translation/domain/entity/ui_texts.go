// Package entity defines the closed table of UI strings that can be translated.
package entity

// UITexts is the complete set of UI strings. Every field is a known key;
// translation output is merged into it field by field.
type UITexts struct {
	// landing
	LandingTitle        string `json:"landingTitle"`
	LandingHeroSubtitle string `json:"landingHeroSubtitle"`
	JoinNowCTA          string `json:"joinNowCTA"`
	ExploreVideosCTA    string `json:"exploreVideosCTA"`
	BrowseMarketCTA     string `json:"browseMarketCTA"`
	FeatureWatchTitle   string `json:"featureWatchTitle"`
	FeatureWatchDesc    string `json:"featureWatchDesc"`
	FeatureShopTitle    string `json:"featureShopTitle"`
	FeatureShopDesc     string `json:"featureShopDesc"`
	FeatureEmpowerTitle string `json:"featureEmpowerTitle"`
	FeatureEmpowerDesc  string `json:"featureEmpowerDesc"`

	// auth
	LoginTitle          string `json:"loginTitle"`
	LoginSubtitle       string `json:"loginSubtitle"`
	RegisterTitle       string `json:"registerTitle"`
	RegisterSubtitle    string `json:"registerSubtitle"`
	Name                string `json:"name"`
	Email               string `json:"email"`
	Login               string `json:"login"`
	Register            string `json:"register"`
	LoginButton         string `json:"loginButton"`
	RegisterButton      string `json:"registerButton"`
	HaveAccount         string `json:"haveAccount"`
	NoAccount           string `json:"noAccount"`
	FillFields          string `json:"fillFields"`
	InvalidEmail        string `json:"invalidEmail"`
	InvalidCredentials  string `json:"invalidCredentials"`
	RegistrationSuccess string `json:"registrationSuccess"`
	Logout              string `json:"logout"`
	Welcome             string `json:"welcome"`

	// navigation
	MenuHome           string `json:"menuHome"`
	MenuDashboard      string `json:"menuDashboard"`
	MenuMarketplace    string `json:"menuMarketplace"`
	MenuUploadVideo    string `json:"menuUploadVideo"`
	MenuSellItem       string `json:"menuSellItem"`
	MenuSkillWallet    string `json:"menuSkillWallet"`
	MenuMarketInsights string `json:"menuMarketInsights"`

	// dashboard
	DashboardTitle  string `json:"dashboardTitle"`
	ProfileSummary  string `json:"profileSummary"`
	VideosUploaded  string `json:"videosUploaded"`
	TotalViews      string `json:"totalViews"`
	Earnings        string `json:"earnings"`
	SkillsLearned   string `json:"skillsLearned"`
	ItemsListed     string `json:"itemsListed"`
	MyCreations     string `json:"myCreations"`
	MyProducts      string `json:"myProducts"`
	NoVideos        string `json:"noVideos"`
	NoItems         string `json:"noItems"`
	Views           string `json:"views"`
	BackToDashboard string `json:"backToDashboard"`

	// upload
	UploadTitle             string `json:"uploadTitle"`
	UploadSubtitle          string `json:"uploadSubtitle"`
	VideoTitleLabel         string `json:"videoTitleLabel"`
	VideoDescLabel          string `json:"videoDescLabel"`
	VideoURLLabel           string `json:"videoUrlLabel"`
	VideoURLPlaceholder     string `json:"videoUrlPlaceholder"`
	ThumbnailURLLabel       string `json:"thumbnailUrlLabel"`
	ThumbnailURLPlaceholder string `json:"thumbnailUrlPlaceholder"`
	UploadButton            string `json:"uploadButton"`
	UploadSuccess           string `json:"uploadSuccess"`

	// sell
	SellTitle               string `json:"sellTitle"`
	SellSubtitle            string `json:"sellSubtitle"`
	ItemNameLabel           string `json:"itemNameLabel"`
	ItemDescLabel           string `json:"itemDescLabel"`
	ItemPriceLabel          string `json:"itemPriceLabel"`
	ItemImageURLLabel       string `json:"itemImageUrlLabel"`
	ItemImageURLPlaceholder string `json:"itemImageUrlPlaceholder"`
	SellButton              string `json:"sellButton"`
	SellSuccess             string `json:"sellSuccess"`

	// marketplace and payment
	BackToMarketplace   string `json:"backToMarketplace"`
	BuyNow              string `json:"buyNow"`
	PaymentTitle        string `json:"paymentTitle"`
	PaymentSelectMethod string `json:"paymentSelectMethod"`
	AmountToPay         string `json:"amountToPay"`
	PayViaUPI           string `json:"payViaUPI"`
	PayViaCard          string `json:"payViaCard"`
	PayViaNetBanking    string `json:"payViaNetBanking"`
	EnterUPIID          string `json:"enterUpiId"`
	OrPayUsing          string `json:"orPayUsing"`
	PhonePe             string `json:"phonePe"`
	GPay                string `json:"gPay"`
	CardNumber          string `json:"cardNumber"`
	CardHolderName      string `json:"cardHolderName"`
	ExpiryDate          string `json:"expiryDate"`
	CVV                 string `json:"cvv"`
	SelectBank          string `json:"selectBank"`
	PopularBanks        string `json:"popularBanks"`
	VerifyPayment       string `json:"verifyPayment"`
	Verifying           string `json:"verifying"`
	PaymentSuccess      string `json:"paymentSuccess"`
	OrderPlaced         string `json:"orderPlaced"`
	TransactionID       string `json:"transactionId"`
	Redirecting         string `json:"redirecting"`

	// skill wallet
	WalletTitle     string `json:"walletTitle"`
	WalletSubtitle  string `json:"walletSubtitle"`
	IdentityCard    string `json:"identityCard"`
	DIDLabel        string `json:"didLabel"`
	ShareIdentity   string `json:"shareIdentity"`
	IdentityCopied  string `json:"identityCopied"`
	ReputationScore string `json:"reputationScore"`
	SkillBadges     string `json:"skillBadges"`
	BadgeVerified   string `json:"badgeVerified"`
	BadgeCreator    string `json:"badgeCreator"`
	BadgeMerchant   string `json:"badgeMerchant"`
	BadgeInfluencer string `json:"badgeInfluencer"`

	// market insights
	MarketInsightsTitle       string `json:"marketInsightsTitle"`
	MarketInsightsSubtitle    string `json:"marketInsightsSubtitle"`
	MarketInsightsPlaceholder string `json:"marketInsightsPlaceholder"`
	MarketInsightsButton      string `json:"marketInsightsButton"`
	SourcesTitle              string `json:"sourcesTitle"`
}

// English returns the canonical English table.
func English() UITexts {
	return UITexts{
		LandingTitle:              "Where Tradition Meets Opportunity",
		LandingHeroSubtitle:       "Learn rural crafts, share your skills and sell handmade products to the world.",
		JoinNowCTA:                "Join Now",
		ExploreVideosCTA:          "Explore Videos",
		BrowseMarketCTA:           "Browse Marketplace",
		FeatureWatchTitle:         "Watch & Learn",
		FeatureWatchDesc:          "Learn traditional skills from artisans through short video tutorials.",
		FeatureShopTitle:          "Shop Handmade",
		FeatureShopDesc:           "Buy authentic products directly from the makers.",
		FeatureEmpowerTitle:       "Empower Artisans",
		FeatureEmpowerDesc:        "Every view and purchase supports a rural creator.",
		LoginTitle:                "Welcome Back",
		LoginSubtitle:             "Log in to continue your journey",
		RegisterTitle:             "Create Account",
		RegisterSubtitle:          "Join the SkillRoots community",
		Name:                      "Name",
		Email:                     "Email",
		Login:                     "Login",
		Register:                  "Register",
		LoginButton:               "Log In",
		RegisterButton:            "Sign Up",
		HaveAccount:               "Already have an account?",
		NoAccount:                 "Don't have an account?",
		FillFields:                "Please fill in all fields.",
		InvalidEmail:              "Please enter a valid email address.",
		InvalidCredentials:        "No account found for this email.",
		RegistrationSuccess:       "Registration successful! Please log in.",
		Logout:                    "Logout",
		Welcome:                   "Welcome",
		MenuHome:                  "Home",
		MenuDashboard:             "Dashboard",
		MenuMarketplace:           "Marketplace",
		MenuUploadVideo:           "Upload Video",
		MenuSellItem:              "Sell Item",
		MenuSkillWallet:           "Skill Wallet",
		MenuMarketInsights:        "Market Insights",
		DashboardTitle:            "My Dashboard",
		ProfileSummary:            "Profile Summary",
		VideosUploaded:            "Videos Uploaded",
		TotalViews:                "Total Views",
		Earnings:                  "Earnings",
		SkillsLearned:             "Skills Learned",
		ItemsListed:               "Items Listed",
		MyCreations:               "My Creations",
		MyProducts:                "My Products",
		NoVideos:                  "No videos yet.",
		NoItems:                   "No items yet.",
		Views:                     "views",
		BackToDashboard:           "Back to Dashboard",
		UploadTitle:               "Upload a Video",
		UploadSubtitle:            "Share your craft with the community",
		VideoTitleLabel:           "Video Title",
		VideoDescLabel:            "Description",
		VideoURLLabel:             "Video URL",
		VideoURLPlaceholder:       "https://example.com/video.mp4",
		ThumbnailURLLabel:         "Thumbnail URL",
		ThumbnailURLPlaceholder:   "https://example.com/thumbnail.jpg",
		UploadButton:              "Upload",
		UploadSuccess:             "Video uploaded successfully!",
		SellTitle:                 "Sell an Item",
		SellSubtitle:              "List your handmade product",
		ItemNameLabel:             "Item Name",
		ItemDescLabel:             "Description",
		ItemPriceLabel:            "Price (₹)",
		ItemImageURLLabel:         "Image URL",
		ItemImageURLPlaceholder:   "https://example.com/item.jpg",
		SellButton:                "List Item",
		SellSuccess:               "Item listed successfully!",
		BackToMarketplace:         "Back to Marketplace",
		BuyNow:                    "Buy Now",
		PaymentTitle:              "Secure Payment",
		PaymentSelectMethod:       "Select a payment method",
		AmountToPay:               "Amount to Pay",
		PayViaUPI:                 "UPI",
		PayViaCard:                "Card",
		PayViaNetBanking:          "Net Banking",
		EnterUPIID:                "Enter UPI ID",
		OrPayUsing:                "Or pay using",
		PhonePe:                   "PhonePe",
		GPay:                      "Google Pay",
		CardNumber:                "Card Number",
		CardHolderName:            "Card Holder Name",
		ExpiryDate:                "Expiry Date",
		CVV:                       "CVV",
		SelectBank:                "Select your bank",
		PopularBanks:              "Popular Banks",
		VerifyPayment:             "Pay Now",
		Verifying:                 "Verifying payment...",
		PaymentSuccess:            "Payment Successful!",
		OrderPlaced:               "Your order has been placed.",
		TransactionID:             "Transaction ID",
		Redirecting:               "Redirecting...",
		WalletTitle:               "Skill Wallet",
		WalletSubtitle:            "Your verified digital identity",
		IdentityCard:              "Digital Identity Card",
		DIDLabel:                  "Decentralized ID",
		ShareIdentity:             "Share Identity",
		IdentityCopied:            "Copied!",
		ReputationScore:           "Reputation Score",
		SkillBadges:               "Skill Badges",
		BadgeVerified:             "Verified",
		BadgeCreator:              "Creator",
		BadgeMerchant:             "Merchant",
		BadgeInfluencer:           "Influencer",
		MarketInsightsTitle:       "Market Insights",
		MarketInsightsSubtitle:    "Ask about prices, demand and trends for your craft",
		MarketInsightsPlaceholder: "e.g. What is the demand for handloom sarees this season?",
		MarketInsightsButton:      "Get Insights",
		SourcesTitle:              "Sources",
	}
}
