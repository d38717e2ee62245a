// Automated Real Estate Platform - Social Media Automation and Analytics
// Copyright 2026 smaskoun
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/smaskoun/Automated-platform-Real-Estate

package seo

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"
)

// contentTemplate holds the hooks and body structures for one content type.
// Structures use {placeholder} slots filled from the per-type body builders.
type contentTemplate struct {
	hooks      []string
	structures []string
	ctaType    string
}

var contentTemplates = map[string]contentTemplate{
	"property_showcase": {
		hooks: []string{
			"🏡 Just listed in {location}!",
			"✨ New on the market:",
			"🔥 Hot property alert!",
			"💎 Hidden gem discovered:",
			"🌟 Featured listing:",
		},
		structures: []string{
			"{hook}\n\n{property_description}\n\n💰 {price_info}\n📍 {location_details}\n\n{call_to_action}",
			"{hook}\n\n{key_features}\n\n{neighborhood_info}\n\n{call_to_action}",
			"{hook}\n\n{property_description}\n\n{investment_angle}\n\n{call_to_action}",
		},
		ctaType: "property_inquiry",
	},
	"market_update": {
		hooks: []string{
			"📊 {location} Market Update:",
			"📈 What's happening in {location}:",
			"🏘️ {location} Real Estate Trends:",
			"💹 Market Insight for {location}:",
			"📋 Your {location} Market Report:",
		},
		structures: []string{
			"{hook}\n\n{market_data}\n\n{analysis}\n\n{advice}\n\n{call_to_action}",
			"{hook}\n\n{trend_summary}\n\n{impact_explanation}\n\n{call_to_action}",
		},
		ctaType: "market_consultation",
	},
	"educational": {
		hooks: []string{
			"💡 Home Buying Tip:",
			"🎓 Real Estate Education:",
			"📚 Did you know?",
			"🤔 Wondering about {topic}?",
			"💭 Common question:",
		},
		structures: []string{
			"{hook}\n\n{educational_content}\n\n{practical_application}\n\n{call_to_action}",
			"{hook}\n\n{myth_busting}\n\n{correct_information}\n\n{call_to_action}",
		},
		ctaType: "general_engagement",
	},
	"community": {
		hooks: []string{
			"❤️ Love our {location} community!",
			"🌟 Spotlight on {location}:",
			"🏘️ Why {location} is special:",
			"📍 Local favorite in {location}:",
			"🎉 Celebrating {location}:",
		},
		structures: []string{
			"{hook}\n\n{community_feature}\n\n{personal_connection}\n\n{call_to_action}",
			"{hook}\n\n{local_business_spotlight}\n\n{community_value}\n\n{call_to_action}",
		},
		ctaType: "general_engagement",
	},
}

var ctaTemplates = map[string][]string{
	"property_inquiry": {
		"DM me for more details! 📩",
		"Ready to schedule a viewing? Let's chat! 💬",
		"Questions about this property? I'm here to help! 🤝",
		"Want to know more? Send me a message! 📱",
		"Interested? Let's discuss your options! 💼",
	},
	"market_consultation": {
		"Want a personalized market analysis? Let's connect! 📊",
		"Curious about your home's value? Let's talk! 🏡",
		"Ready to explore the market? I'm here to guide you! 🗺️",
		"Need market insights for your area? Reach out! 📈",
		"Planning your next move? Let's strategize! 🎯",
	},
	"general_engagement": {
		"What are your thoughts? Share in the comments! 💭",
		"Have questions? Drop them below! ⬇️",
		"Tag someone who needs to see this! 👥",
		"Save this post for later! 🔖",
		"Share your experience in the comments! 💬",
	},
}

// hourRange is an inclusive-start, exclusive-end posting window.
type hourRange struct{ start, end int }

var optimalPostingWindows = map[string]struct {
	weekday []hourRange
	weekend []hourRange
}{
	"instagram": {
		weekday: []hourRange{{11, 13}, {18, 20}},
		weekend: []hourRange{{10, 12}},
	},
	"facebook": {
		weekday: []hourRange{{9, 10}, {15, 16}},
		weekend: []hourRange{{12, 13}},
	},
}

// GenerateRequest parameterizes one content generation.
type GenerateRequest struct {
	ContentType string            `json:"content_type" validate:"required"`
	Platform    string            `json:"platform"`
	Location    string            `json:"location"`
	CustomData  map[string]string `json:"custom_data"`
}

// GeneratedContent is a complete, ready-to-post content package.
type GeneratedContent struct {
	Content                  string   `json:"content"`
	Hashtags                 []string `json:"hashtags"`
	ImagePrompt              string   `json:"image_prompt"`
	Platform                 string   `json:"platform"`
	ContentType              string   `json:"content_type"`
	Location                 string   `json:"location"`
	OptimalPostingTime       string   `json:"optimal_posting_time"`
	SEOMetadata              Metadata `json:"seo_metadata"`
	CharacterCount           int      `json:"character_count"`
	EstimatedEngagementScore float64  `json:"estimated_engagement_score"`
}

// GenerateContent produces a full SEO-optimized post package. Unknown
// content types fall back to the community templates; locations outside the
// home region are suffixed with it.
func (s *Service) GenerateContent(ctx context.Context, req GenerateRequest) GeneratedContent {
	platform := req.Platform
	if platform == "" {
		platform = "instagram"
	}
	location := s.qualifyLocation(req.Location)
	custom := req.CustomData
	if custom == nil {
		custom = map[string]string{}
	}

	content := s.generateBody(req.ContentType, location, custom)
	hashtags := s.GenerateHashtags(req.ContentType, platform, location)

	return GeneratedContent{
		Content:                  content,
		Hashtags:                 hashtags,
		ImagePrompt:              s.generateImagePrompt(req.ContentType, location, custom),
		Platform:                 platform,
		ContentType:              req.ContentType,
		Location:                 location,
		OptimalPostingTime:       s.optimalPostingTime(platform),
		SEOMetadata:              s.Analyze(ctx, content, location, req.ContentType),
		CharacterCount:           len(content),
		EstimatedEngagementScore: s.estimateEngagement(ctx, content, hashtags, platform),
	}
}

// qualifyLocation anchors out-of-region locations to the home region.
func (s *Service) qualifyLocation(location string) string {
	if location == "" {
		return s.region
	}
	lower := strings.ToLower(location)
	if strings.Contains(lower, "windsor") || strings.Contains(lower, "essex") {
		return location
	}
	return location + ", " + s.region
}

func (s *Service) generateBody(contentType, location string, custom map[string]string) string {
	template, ok := contentTemplates[contentType]
	if !ok {
		template = contentTemplates["community"]
	}

	hook := fillSlots(s.choice(template.hooks), mergeSlots(map[string]string{"location": location}, custom))
	structure := s.choice(template.structures)

	var slots map[string]string
	switch contentType {
	case "property_showcase":
		slots = s.propertySlots(location, custom)
	case "market_update":
		slots = s.marketSlots(location)
	case "educational":
		slots = s.educationalSlots(location, custom)
	default:
		slots = s.communitySlots(location, custom)
	}
	slots["hook"] = hook
	slots["call_to_action"] = s.choice(ctaTemplates[template.ctaType])

	body, complete := tryFillSlots(structure, slots)
	if !complete {
		fallback := slots["description"]
		if fallback == "" {
			fallback = fmt.Sprintf("Great opportunity in %s!", location)
		}
		body = fmt.Sprintf("%s\n\n%s\n\n%s", hook, fallback, slots["call_to_action"])
	}
	return body
}

var propertyTypes = []string{
	"family home", "condo", "townhouse", "luxury home", "starter home", "investment property",
}

var propertyFeatures = []string{
	"updated kitchen", "spacious bedrooms", "beautiful backyard",
	"modern finishes", "great location", "move-in ready",
}

func (s *Service) propertySlots(location string, custom map[string]string) map[string]string {
	propertyType := custom["property_type"]
	if propertyType == "" {
		propertyType = s.choice(propertyTypes)
	}
	priceInfo := custom["price"]
	if priceInfo == "" {
		priceInfo = "Competitively priced"
	}
	return map[string]string{
		"property_description": fmt.Sprintf(
			"Beautiful %s in the heart of %s. This property offers everything you're looking for in your next home.",
			propertyType, location),
		"key_features": fmt.Sprintf("✨ Key features:\n• %s\n• %s\n• %s",
			titleCase(s.choice(propertyFeatures)),
			titleCase(s.choice(propertyFeatures)),
			titleCase(s.choice(propertyFeatures))),
		"price_info":        priceInfo,
		"location_details":  fmt.Sprintf("Located in desirable %s, close to amenities and transportation.", location),
		"neighborhood_info": fmt.Sprintf("%s offers the perfect blend of community charm and urban convenience.", location),
		"investment_angle":  fmt.Sprintf("Excellent investment opportunity in %s's growing market.", location),
	}
}

var marketTrends = []string{
	"steady growth", "increased activity", "strong demand", "balanced market", "buyer opportunities",
}

func (s *Service) marketSlots(location string) map[string]string {
	return map[string]string{
		"market_data":   fmt.Sprintf("Recent data shows %s in the %s real estate market.", s.choice(marketTrends), location),
		"trend_summary": fmt.Sprintf("The %s market continues to show positive indicators for both buyers and sellers.", location),
		"analysis": fmt.Sprintf(
			"What this means: %s remains an attractive market for real estate investment and homeownership.", location),
		"impact_explanation": fmt.Sprintf("These trends indicate continued stability and growth potential in %s.", location),
		"advice":             "Now is a great time to explore your options in this market.",
	}
}

var educationalTopics = []string{
	"home inspection", "mortgage pre-approval", "market timing", "property valuation", "negotiation strategies",
}

func (s *Service) educationalSlots(location string, custom map[string]string) map[string]string {
	topic := custom["topic"]
	if topic == "" {
		topic = s.choice(educationalTopics)
	}
	return map[string]string{
		"educational_content": fmt.Sprintf(
			"Understanding %s is crucial for success in the %s real estate market.", topic, location),
		"practical_application": fmt.Sprintf("Here's how this applies to your %s property search or sale.", location),
		"myth_busting":          fmt.Sprintf("Common myth: %s isn't important in smaller markets like %s.", topic, location),
		"correct_information":   fmt.Sprintf("Reality: %s is just as important in %s as anywhere else.", topic, location),
	}
}

var communityFeatures = []string{
	"local businesses", "parks and recreation", "schools", "cultural events", "dining scene",
}

func (s *Service) communitySlots(location string, custom map[string]string) map[string]string {
	feature := custom["feature"]
	if feature == "" {
		feature = s.choice(communityFeatures)
	}
	return map[string]string{
		"community_feature":        fmt.Sprintf("One of the things I love most about %s is our amazing %s.", location, feature),
		"local_business_spotlight": fmt.Sprintf("Shoutout to the incredible %s that make %s special!", feature, location),
		"personal_connection":      fmt.Sprintf("As a local real estate professional, I'm proud to call %s home.", location),
		"community_value":          fmt.Sprintf("This is what makes %s such a desirable place to live and invest.", location),
	}
}

var imagePrompts = map[string][]string{
	"property_showcase": {
		"Professional real estate photography of a beautiful {property_type} exterior in {location}, Ontario, Canada",
		"High-quality interior shot of a modern {room} with natural lighting, real estate photography style",
		"Stunning curb appeal photo of a well-maintained home in {location}, professional real estate marketing",
	},
	"market_update": {
		"Professional infographic showing real estate market trends for {location}, clean modern design",
		"Aerial view of {location} neighborhood showing residential properties, professional photography",
		"Modern real estate market analysis chart with {location} data, professional business style",
	},
	"educational": {
		"Professional real estate consultation scene with agent and clients reviewing documents",
		"Clean, modern infographic explaining {topic} for real estate, educational style",
		"Professional real estate office setting with educational materials and charts",
	},
	"community": {
		"Beautiful community scene in {location}, Ontario showing local businesses and residents",
		"Scenic view of {location} neighborhood highlighting community features and amenities",
		"Local {location} landmark or community gathering place, professional photography",
	},
}

var qualityEnhancers = []string{
	"professional photography", "high resolution", "excellent lighting",
	"commercial quality", "sharp focus", "real estate marketing style",
}

func (s *Service) generateImagePrompt(contentType, location string, custom map[string]string) string {
	prompts, ok := imagePrompts[contentType]
	if !ok {
		prompts = imagePrompts["community"]
	}

	slots := map[string]string{
		"location":      location,
		"property_type": orDefault(custom["property_type"], "family home"),
		"room":          orDefault(custom["room"], "living room"),
		"topic":         orDefault(custom["topic"], "home buying process"),
	}
	base := fillSlots(s.choice(prompts), slots)

	enhancers := s.sampleStrings(qualityEnhancers, 3)
	return base + ", " + strings.Join(enhancers, ", ")
}

// optimalPostingTime suggests the next posting slot inside the platform's
// best window, quantized to quarter hours. Past slots roll to the next day.
func (s *Service) optimalPostingTime(platform string) string {
	now := s.now()
	windows, ok := optimalPostingWindows[platform]
	if !ok {
		windows = optimalPostingWindows["instagram"]
	}

	ranges := windows.weekday
	if wd := now.Weekday(); wd == time.Saturday || wd == time.Sunday {
		ranges = windows.weekend
	}

	window := ranges[s.randIntn(len(ranges))]
	span := window.end - 1 - window.start
	hour := window.start
	if span > 0 {
		hour += s.randIntn(span + 1)
	}
	minute := []int{0, 15, 30, 45}[s.randIntn(4)]

	target := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !target.After(now) {
		target = target.AddDate(0, 0, 1)
	}
	return target.Format("2006-01-02 15:04:05")
}

// estimateEngagement predicts engagement out of 100 from the SEO score,
// hashtag count fit, platform conventions and CTA presence.
func (s *Service) estimateEngagement(ctx context.Context, content string, hashtags []string, platform string) float64 {
	score := 0.0

	seoScore, _, _ := s.Score(ctx, content, s.region, "general")
	score += (seoScore / 100) * 40

	strategy := s.keywords.strategyFor(platform)
	n := len(hashtags)
	if n >= strategy.MinCount && n <= strategy.MaxCount {
		score += 30
	} else {
		distance := math.Min(math.Abs(float64(n-strategy.MinCount)), math.Abs(float64(n-strategy.MaxCount)))
		score += math.Max(30-distance*5, 0)
	}

	contentLower := strings.ToLower(content)
	if platform == "instagram" {
		if containsAny(contentLower, []string{"photo", "image", "see", "look", "view"}) {
			score += 10
		}
		if len(content) <= 300 {
			score += 10
		}
	} else {
		if len(content) >= 100 {
			score += 10
		}
		if strings.Contains(content, "?") {
			score += 10
		}
	}

	if containsAny(contentLower, []string{"dm", "message", "contact", "comment", "share", "tag"}) {
		score += 10
	}

	return math.Min(score, 100)
}

// choice picks one element from the guarded random source.
func (s *Service) choice(options []string) string {
	if len(options) == 0 {
		return ""
	}
	return options[s.randIntn(len(options))]
}

// sampleStrings draws count distinct elements without replacement.
func (s *Service) sampleStrings(options []string, count int) []string {
	available := make([]string, len(options))
	copy(available, options)
	if count > len(available) {
		count = len(available)
	}
	out := make([]string, 0, count)
	for len(out) < count {
		idx := s.randIntn(len(available))
		out = append(out, available[idx])
		available = append(available[:idx], available[idx+1:]...)
	}
	return out
}

// fillSlots replaces every known {slot}; unknown slots are left in place.
func fillSlots(template string, slots map[string]string) string {
	out := template
	for name, value := range slots {
		out = strings.ReplaceAll(out, "{"+name+"}", value)
	}
	return out
}

// tryFillSlots fills the template and reports whether every slot resolved.
func tryFillSlots(template string, slots map[string]string) (string, bool) {
	out := fillSlots(template, slots)
	return out, !strings.Contains(out, "{")
}

func mergeSlots(base, extra map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(extra))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

// titleCase capitalizes each word, matching the feature-list presentation.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
