package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"property-assistant-be/internal/constant"
	"property-assistant-be/internal/dto"
	"property-assistant-be/internal/entity"
	"property-assistant-be/internal/pkg/logger"
	"property-assistant-be/internal/repository/memory"
	"property-assistant-be/internal/repository/specification"
	"property-assistant-be/internal/repository/unitofwork"
	"property-assistant-be/pkg/catalog"
	"property-assistant-be/pkg/llm"
	"property-assistant-be/pkg/store"
)

// ContextRetriever supplies a grounding passage for free-form questions.
type ContextRetriever interface {
	Lookup(query string) string
}

// IConversationService drives the whole dialogue. Handle never returns an
// error: a failing collaborator degrades to a canned reply so the socket
// always has something to send back.
type IConversationService interface {
	Handle(ctx context.Context, sessionID string, message *dto.ChatClientMessage) *dto.ChatBotResponse
}

type conversationService struct {
	uowFactory  unitofwork.RepositoryFactory
	sessions    *memory.SessionRepository
	matcher     *catalog.RentalMatcher
	providers   *catalog.ProviderDirectory
	retriever   ContextRetriever
	llmProvider llm.LLMProvider
	llmTimeout  time.Duration
	logger      logger.ILogger

	intentRules []intentRule
}

// intentRule maps a normalized choose_intent utterance to its handler.
// Rules are evaluated in declaration order; the first match wins, so broad
// substring rules sit below the exact ones.
type intentRule struct {
	matches func(low string) bool
	handle  func(ctx context.Context, session *store.Session, text string) *dto.ChatBotResponse
}

func NewConversationService(
	uowFactory unitofwork.RepositoryFactory,
	sessions *memory.SessionRepository,
	matcher *catalog.RentalMatcher,
	providers *catalog.ProviderDirectory,
	retriever ContextRetriever,
	llmProvider llm.LLMProvider,
	llmTimeout time.Duration,
	log logger.ILogger,
) IConversationService {
	s := &conversationService{
		uowFactory:  uowFactory,
		sessions:    sessions,
		matcher:     matcher,
		providers:   providers,
		retriever:   retriever,
		llmProvider: llmProvider,
		llmTimeout:  llmTimeout,
		logger:      log,
	}
	s.intentRules = []intentRule{
		{
			matches: func(low string) bool { return low == "new search" || low == "rent again" },
			handle: func(ctx context.Context, session *store.Session, text string) *dto.ChatBotResponse {
				session.Rental = store.RentalDraft{}
				session.Stage = store.StageRentalLocation
				return &dto.ChatBotResponse{Text: "Sure! Which *area or postcode* are you interested in?", ShowInput: true}
			},
		},
		{
			matches: func(low string) bool { return strings.Contains(low, "rent") },
			handle: func(ctx context.Context, session *store.Session, text string) *dto.ChatBotResponse {
				session.Rental = store.RentalDraft{}
				session.Stage = store.StageRentalLocation
				return &dto.ChatBotResponse{Text: "Great! Which *area or postcode* are you interested in?", ShowInput: true}
			},
		},
		{
			matches: func(low string) bool {
				return strings.Contains(low, "repair") || strings.Contains(low, "service")
			},
			handle: func(ctx context.Context, session *store.Session, text string) *dto.ChatBotResponse {
				session.Repair = store.RepairDraft{}
				session.Stage = store.StageRepairCategory
				options := make([]dto.ChatOption, 0, len(constant.RepairCategories))
				for _, c := range constant.RepairCategories {
					options = append(options, dto.ChatOption{Label: "🔧 " + c, Value: c})
				}
				return &dto.ChatBotResponse{
					Text:      "What type of issue are you having?",
					Options:   options,
					ShowInput: true,
				}
			},
		},
		{
			matches: func(low string) bool { return strings.Contains(low, "general") },
			handle: func(ctx context.Context, session *store.Session, text string) *dto.ChatBotResponse {
				return &dto.ChatBotResponse{Text: s.askLLM(ctx, session, text), ShowInput: true}
			},
		},
	}
	return s
}

// menuKeywords reset any stage back to the main menu.
var menuKeywords = map[string]bool{
	"menu":      true,
	"main menu": true,
	"restart":   true,
	"home":      true,
}

// closingPhrases end the provider confirmation step without picking anyone.
var closingPhrases = map[string]bool{
	"done":      true,
	"thanks":    true,
	"thank you": true,
	"ok":        true,
	"okay":      true,
	"fine":      true,
	"no":        true,
	"no thanks": true,
}

func mainMenuOptions() []dto.ChatOption {
	return []dto.ChatOption{
		{Label: "🏠 Rent a Property", Value: "rent"},
		{Label: "🛠 Request a Repair / Service", Value: "repair"},
		{Label: "💬 General Questions", Value: "general"},
	}
}

func afterRepairOptions() []dto.ChatOption {
	return []dto.ChatOption{
		{Label: "🏠 Rent a Property", Value: "rent"},
		{Label: "🛠 Request Another Repair", Value: "repair"},
		{Label: "🏠 Main Menu", Value: "menu"},
	}
}

func (s *conversationService) Handle(ctx context.Context, sessionID string, message *dto.ChatClientMessage) *dto.ChatBotResponse {
	session := s.sessions.GetOrCreate(sessionID)
	text := strings.TrimSpace(message.Text)
	defer s.sessions.Save(session)

	// The menu reset outranks every stage, including mid-flow ones.
	if menuKeywords[strings.ToLower(text)] {
		session.Stage = store.StageChooseIntent
		return &dto.ChatBotResponse{
			Text:      "What would you like help with today?",
			Options:   mainMenuOptions(),
			ShowInput: true,
		}
	}

	switch session.Stage {
	case store.StageStart:
		session.Stage = store.StageAskName
		return &dto.ChatBotResponse{Text: "👋 Hi! I’m your Property Assistant.\nWhat’s your *name*?", ShowInput: true}

	case store.StageAskName:
		session.Name = text
		session.Stage = store.StageAskPhone
		return &dto.ChatBotResponse{Text: fmt.Sprintf("Nice to meet you, %s! 📱\nYour *phone number*?", text), ShowInput: true}

	case store.StageAskPhone:
		session.Phone = text
		session.Stage = store.StageAskEmail
		return &dto.ChatBotResponse{Text: "Great! What’s your *email address*?", ShowInput: true}

	case store.StageAskEmail:
		session.Email = text
		if err := s.ensureUser(ctx, session); err != nil {
			s.logger.Error("conversation_service", "failed to persist user", map[string]interface{}{
				"session_id": sessionID,
				"error":      err.Error(),
			})
			// Stage stays put so the next message retries the save.
			return &dto.ChatBotResponse{Text: constant.PersistenceFailedReply, ShowInput: true}
		}
		session.Stage = store.StageChooseIntent
		return &dto.ChatBotResponse{
			Text:      "Thanks! What would you like help with today?",
			Options:   mainMenuOptions(),
			ShowInput: true,
		}

	case store.StageChooseIntent:
		low := strings.ToLower(text)
		for _, rule := range s.intentRules {
			if rule.matches(low) {
				return rule.handle(ctx, session, text)
			}
		}
		return &dto.ChatBotResponse{Text: "Please choose an option.", ShowInput: true}
	}

	if strings.HasPrefix(string(session.Stage), "rental") {
		return s.handleRental(ctx, session, text)
	}

	if strings.HasPrefix(string(session.Stage), "repair") {
		return s.handleRepair(ctx, session, text)
	}

	return &dto.ChatBotResponse{Text: s.askLLM(ctx, session, text), ShowInput: true}
}

// ---------------------------------------------------------------------------
// Rental flow
// ---------------------------------------------------------------------------

func (s *conversationService) handleRental(ctx context.Context, session *store.Session, text string) *dto.ChatBotResponse {
	switch session.Stage {
	case store.StageRentalLocation:
		session.Rental.Location = text
		session.Stage = store.StageRentalPropertyType
		return &dto.ChatBotResponse{
			Text: "What type of property?",
			Options: []dto.ChatOption{
				{Label: "🏡 House", Value: "house"},
				{Label: "🏢 Flat", Value: "flat"},
				{Label: "🏙 Apartment", Value: "apartment"},
				{Label: "🏬 Studio", Value: "studio"},
			},
			ShowInput: true,
		}

	case store.StageRentalPropertyType:
		session.Rental.PropertyType = strings.ToLower(text)
		session.Stage = store.StageRentalBedrooms
		return &dto.ChatBotResponse{
			Text: "How many bedrooms?",
			Options: []dto.ChatOption{
				{Label: "1", Value: "1"},
				{Label: "2", Value: "2"},
				{Label: "3", Value: "3"},
				{Label: "4", Value: "4"},
			},
			ShowInput: true,
		}

	case store.StageRentalBedrooms:
		bedrooms := parseBedrooms(text)
		session.Rental.Bedrooms = &bedrooms
		session.Stage = store.StageRentalBudget
		return &dto.ChatBotResponse{Text: "Your *maximum monthly budget*?", ShowInput: true}

	case store.StageRentalBudget:
		session.Rental.Budget = parseBudget(text)
		session.Stage = store.StageRentalFurnished
		return &dto.ChatBotResponse{
			Text: "Do you prefer furnished?",
			Options: []dto.ChatOption{
				{Label: "✅ Furnished", Value: "furnished"},
				{Label: "❌ Unfurnished", Value: "unfurnished"},
				{Label: "🤷 Doesn't matter", Value: "none"},
			},
			ShowInput: true,
		}

	case store.StageRentalFurnished:
		session.Rental.Furnished = parseFurnished(text)
		session.Stage = store.StageRentalGarden
		return &dto.ChatBotResponse{
			Text: "Garden needed?",
			Options: []dto.ChatOption{
				{Label: "🌿 Yes", Value: "yes"},
				{Label: "❌ No", Value: "no"},
			},
			ShowInput: true,
		}

	case store.StageRentalGarden:
		garden := parseYes(text)
		session.Rental.Garden = &garden
		session.Stage = store.StageRentalParking
		return &dto.ChatBotResponse{
			Text: "Parking needed?",
			Options: []dto.ChatOption{
				{Label: "🚗 Yes", Value: "yes"},
				{Label: "❌ No", Value: "no"},
			},
			ShowInput: true,
		}

	case store.StageRentalParking:
		parking := parseYes(text)
		session.Rental.Parking = &parking

		matches := s.matcher.FindMatches(requirementFromDraft(session.Rental))

		// Sessions that jumped to the menu before onboarding have no user
		// row. They still get their matches; only the save is skipped.
		if session.UserID == nil {
			s.logger.Warn("conversation_service", "rental search not persisted, session has no user", map[string]interface{}{
				"session_id": session.ID,
			})
		} else if err := s.saveRentalSearch(ctx, session, matches); err != nil {
			s.logger.Error("conversation_service", "failed to persist rental search", map[string]interface{}{
				"session_id": session.ID,
				"error":      err.Error(),
			})
			return &dto.ChatBotResponse{Text: constant.PersistenceFailedReply, ShowInput: true}
		}

		session.Stage = store.StageChooseIntent
		return &dto.ChatBotResponse{
			Text:       "Here are your matched properties:",
			Properties: matchesToCards(matches),
			Options: []dto.ChatOption{
				{Label: "🔎 New Search", Value: "new search"},
				{Label: "🏠 Main Menu", Value: "menu"},
			},
			ShowInput: true,
		}
	}

	return &dto.ChatBotResponse{Text: "I didn't understand that.", ShowInput: true}
}

// ---------------------------------------------------------------------------
// Repair flow
// ---------------------------------------------------------------------------

func (s *conversationService) handleRepair(ctx context.Context, session *store.Session, text string) *dto.ChatBotResponse {
	switch session.Stage {
	case store.StageRepairCategory:
		session.Repair.Category = text
		session.Stage = store.StageRepairAddress
		return &dto.ChatBotResponse{Text: "What is the *address* of the property?", ShowInput: true}

	case store.StageRepairAddress:
		session.Repair.Address = text
		session.Stage = store.StageRepairDescription
		return &dto.ChatBotResponse{Text: "Please describe the issue in detail.", ShowInput: true}

	case store.StageRepairDescription:
		session.Repair.Description = text

		if session.UserID == nil {
			s.logger.Warn("conversation_service", "repair request not persisted, session has no user", map[string]interface{}{
				"session_id": session.ID,
			})
		} else if err := s.saveRepairRequest(ctx, session); err != nil {
			s.logger.Error("conversation_service", "failed to persist repair request", map[string]interface{}{
				"session_id": session.ID,
				"error":      err.Error(),
			})
			return &dto.ChatBotResponse{Text: constant.PersistenceFailedReply, ShowInput: true}
		}

		providers := s.providers.FindMatching(session.Repair.Category)
		options := make([]dto.ChatOption, 0, len(providers))
		for _, p := range providers {
			rating := strconv.FormatFloat(p.Rating, 'f', -1, 64)
			options = append(options, dto.ChatOption{
				Label: fmt.Sprintf("📞 %s (%s⭐)", p.Name, rating),
				Value: p.Name,
			})
		}

		session.Stage = store.StageRepairProviderConfirm
		return &dto.ChatBotResponse{
			Text:      "Here are recommended service providers.\nYou may choose one or type 'done'.",
			Options:   options,
			ShowInput: true,
		}

	case store.StageRepairProviderConfirm:
		if closingPhrases[strings.ToLower(text)] {
			session.Stage = store.StageChooseIntent
			return &dto.ChatBotResponse{
				Text:      "Your repair request is logged. Anything else?",
				Options:   afterRepairOptions(),
				ShowInput: true,
			}
		}

		if err := s.recordProviderChoice(ctx, session, text); err != nil {
			s.logger.Warn("conversation_service", "failed to record provider choice", map[string]interface{}{
				"session_id": session.ID,
				"error":      err.Error(),
			})
		}

		session.Stage = store.StageChooseIntent
		return &dto.ChatBotResponse{
			Text:      fmt.Sprintf("%s has been noted! They may contact you soon.\nNeed anything else?", text),
			Options:   afterRepairOptions(),
			ShowInput: true,
		}
	}

	return &dto.ChatBotResponse{Text: "I didn't understand that.", ShowInput: true}
}

// ---------------------------------------------------------------------------
// Persistence
// ---------------------------------------------------------------------------

// ensureUser resolves the session to a user row, reusing an existing row
// with the same phone number. Idempotent per session.
func (s *conversationService) ensureUser(ctx context.Context, session *store.Session) error {
	if session.UserID != nil {
		return nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByPhone{Phone: session.Phone})
	if err != nil {
		_ = uow.Rollback()
		return err
	}

	if user == nil {
		phone := session.Phone
		email := session.Email
		user = &entity.User{
			Name:  session.Name,
			Phone: &phone,
			Email: &email,
		}
		if err := uow.UserRepository().Create(ctx, user); err != nil {
			_ = uow.Rollback()
			return err
		}
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	id := user.Id
	session.UserID = &id
	return nil
}

// saveRentalSearch writes the search and all its matches in one transaction
// so a search row never exists without its matches.
func (s *conversationService) saveRentalSearch(ctx context.Context, session *store.Session, matches []catalog.Match) error {
	if session.UserID == nil {
		return fmt.Errorf("no user attached to session")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	search := searchEntityFromDraft(*session.UserID, session.Rental)
	if err := uow.RentalSearchRepository().Create(ctx, search); err != nil {
		_ = uow.Rollback()
		return err
	}

	matchEntities := make([]*entity.RentalMatch, 0, len(matches))
	for _, m := range matches {
		matchEntities = append(matchEntities, matchEntityFromCatalog(m))
	}
	if len(matchEntities) > 0 {
		if err := uow.RentalMatchRepository().CreateBatch(ctx, search.Id, matchEntities); err != nil {
			_ = uow.Rollback()
			return err
		}
	}

	return uow.Commit()
}

func (s *conversationService) saveRepairRequest(ctx context.Context, session *store.Session) error {
	if session.UserID == nil {
		return fmt.Errorf("no user attached to session")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	request := &entity.RepairRequest{
		UserId:      *session.UserID,
		Category:    session.Repair.Category,
		Address:     session.Repair.Address,
		Description: session.Repair.Description,
	}
	if err := uow.RepairRepository().Create(ctx, request); err != nil {
		_ = uow.Rollback()
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	id := request.Id
	session.Repair.RequestId = &id
	return nil
}

// recordProviderChoice is best effort. A failed update is logged but the
/// user still gets the confirmation: the request itself is already saved.
func (s *conversationService) recordProviderChoice(ctx context.Context, session *store.Session, providerName string) error {
	if session.Repair.RequestId == nil {
		return fmt.Errorf("no repair request attached to session")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	if err := uow.RepairRepository().UpdateProvider(ctx, *session.Repair.RequestId, providerName); err != nil {
		_ = uow.Rollback()
		return err
	}
	return uow.Commit()
}

// ---------------------------------------------------------------------------
// LLM fallback
// ---------------------------------------------------------------------------

func (s *conversationService) askLLM(ctx context.Context, session *store.Session, userMessage string) string {
	passage := s.retriever.Lookup(userMessage)

	prompt := fmt.Sprintf(`%s

Grounding context:
%s

Conversation history:
%s
User message:
%s

Your response:
`, constant.LLMSystemInstruction, passage, session.Transcript, userMessage)

	genCtx, cancel := context.WithTimeout(ctx, s.llmTimeout)
	defer cancel()

	reply, err := s.llmProvider.Generate(genCtx, prompt)
	if err != nil {
		s.logger.Error("conversation_service", "llm generation failed", map[string]interface{}{
			"session_id": session.ID,
			"error":      err.Error(),
		})
		// The exchange still happened; keep the transcript complete.
		reply = constant.LLMUnavailableReply
	}

	session.AppendTranscript(constant.TranscriptSpeakerUser, userMessage)
	session.AppendTranscript(constant.TranscriptSpeakerAssistant, reply)
	return reply
}

// ---------------------------------------------------------------------------
// Parsers and converters
// ---------------------------------------------------------------------------

// parseBedrooms accepts "3", "4+" or "3 bedrooms". Anything without a
// leading number falls back to 1.
func parseBedrooms(text string) int {
	cleaned := strings.TrimSpace(strings.ReplaceAll(text, "+", ""))
	if n, err := strconv.Atoi(cleaned); err == nil {
		return n
	}

	digits := ""
	for _, r := range cleaned {
		if r < '0' || r > '9' {
			break
		}
		digits += string(r)
	}
	if digits != "" {
		if n, err := strconv.Atoi(digits); err == nil {
			return n
		}
	}
	return 1
}

// parseBudget concatenates every digit in the text, so "£1,200/month"
// becomes 1200. No digits means no budget constraint.
func parseBudget(text string) *int {
	digits := ""
	for _, r := range text {
		if r >= '0' && r <= '9' {
			digits += string(r)
		}
	}
	if digits == "" {
		return nil
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return nil
	}
	return &n
}

// parseFurnished checks "unfurnished" before "furnished" because the former
// contains the latter as a substring.
func parseFurnished(text string) *bool {
	low := strings.ToLower(text)
	if strings.Contains(low, "unfurnished") {
		v := false
		return &v
	}
	if strings.Contains(low, "furnished") {
		v := true
		return &v
	}
	return nil
}

func parseYes(text string) bool {
	return strings.Contains(strings.ToLower(text), "yes")
}

func requirementFromDraft(d store.RentalDraft) catalog.Requirement {
	return catalog.Requirement{
		Location:     d.Location,
		PropertyType: d.PropertyType,
		Bedrooms:     d.Bedrooms,
		Budget:       d.Budget,
		Furnished:    d.Furnished,
		Garden:       d.Garden,
		Parking:      d.Parking,
	}
}

func searchEntityFromDraft(userId uuid.UUID, d store.RentalDraft) *entity.RentalSearch {
	search := &entity.RentalSearch{
		UserId:    userId,
		Bedrooms:  d.Bedrooms,
		Budget:    d.Budget,
		Furnished: d.Furnished,
		Garden:    d.Garden,
		Parking:   d.Parking,
	}
	if d.Location != "" {
		location := d.Location
		search.Location = &location
	}
	if d.PropertyType != "" {
		propertyType := d.PropertyType
		search.PropertyType = &propertyType
	}
	return search
}

func matchEntityFromCatalog(m catalog.Match) *entity.RentalMatch {
	hasGarden := m.HasGarden
	parking := m.Parking
	return &entity.RentalMatch{
		PropertyId:    m.Id,
		Title:         m.Title,
		Location:      m.Location,
		PricePerMonth: m.PricePerMonth,
		Bedrooms:      m.Bedrooms,
		Furnished:     m.Furnished,
		HasGarden:     &hasGarden,
		Parking:       &parking,
		Url:           m.Url,
		Score:         m.Score,
	}
}

func matchesToCards(matches []catalog.Match) []dto.ChatPropertyCard {
	cards := make([]dto.ChatPropertyCard, 0, len(matches))
	for _, m := range matches {
		hasGarden := m.HasGarden
		parking := m.Parking
		cards = append(cards, dto.ChatPropertyCard{
			Id:            m.Id,
			Title:         m.Title,
			Location:      m.Location,
			PricePerMonth: m.PricePerMonth,
			Bedrooms:      m.Bedrooms,
			Furnished:     m.Furnished,
			HasGarden:     &hasGarden,
			Parking:       &parking,
			Url:           m.Url,
			Score:         m.Score,
		})
	}
	return cards
}
