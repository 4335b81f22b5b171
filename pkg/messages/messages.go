package messages

// Responses to customers.
const (
	ErrUserErrorProcessing = "There was an error processing your request. Please try again later."
	ErrGuildOnly           = "This can only be used in a server."
	ErrNotAdmin            = "You need to be an administrator to run this command!"
	ErrNotSetUp            = "This server is not set up yet. An admin needs to run `/setup`."
	ErrAlreadySetUp        = "This server is already set up!"
	ErrConfigMissing       = "The order category or channel is missing. Please ask an admin to run `/setup` again."
	ErrInvalidAmount       = "The amount must be zero or greater."

	StoreClosedTitle  = ":no_entry: Store closed"
	StoreClosed       = "Orders are not available right now."
	StorePausedTitle  = ":pause_button: Store paused"
	StorePaused       = "Orders are paused. Press **Notify me** on the order panel and we will DM you when we reopen."
	LimitReachedTitle = ":no_entry: Sold out for today"
	LimitReached      = "Today's order limit has been reached. Please try again tomorrow."

	TicketCreatedTitle = "Ticket created"
	TicketCreated      = "Your ticket has been created: <#%s>"
	TicketWelcomeTitle = ":hamburger: Thanks for opening a ticket!"
	TicketWelcome      = "<@%s>, please describe your order request below and one of the staff members will get to you as soon as possible."
	TicketClosingTitle = "Closing ticket"
	TicketClosing      = "This channel will be deleted shortly."

	NotifyTitle     = ":bell: Notify list"
	NotifyAdded     = "You have been added to the notify list. We will DM you when we reopen."
	NotifyRemoved   = "You have been removed from the notify list."
	NotifyStoreOpen = "The store is already open, go ahead and start an order!"

	ReopenedTitle = ":shopping_cart: We are open again"
	Reopened      = "You can place your order now in the server."
)

// Responses to admins.
const (
	SetupComplete    = "Setup complete. The order channel <#%s> and its button are ready. The store starts closed, use `/open` when you are ready."
	SetupRepaired    = "The order channel was missing, so a new one has been created: <#%s>."
	StorePausedAdmin = "Store paused. Customers can join the notify list."
	StoreClosedAdmin = "Store closed. Orders are now closed."
	StoreOpenAdmin   = "Store open. The store can now accept orders! Notifying %d waiting customer(s)."
	PanelNotUpdated  = "The store status changed but the order panel could not be updated: %s"
	LimitSet         = "The daily ticket limit is now %d."
	LimitRemoved     = "The daily ticket limit has been removed."
	TicketsTodaySet  = "Today's ticket count is now %d."
)

// Order panel.
const (
	PanelTitle       = ":shopping_cart: Orders"
	PanelDescription = "Tap the button below to open a private order ticket."
	PanelStatus      = "**Store status:** %s"
	PanelRemaining   = "Tickets remaining today: **%d** of %d"
	PanelNoLimit     = "No daily limit"
	PanelNotify      = "The store is not taking orders right now. Press **Notify me** to get a DM when we reopen."
)

// Help is the help text.
const Help = "**Orders**\n" +
	"`/setup` create the order channel and panel (admin)\n" +
	"`/open` or `/unpause` open the store and notify waiting customers (admin)\n" +
	"`/pause` pause orders, customers can join the notify list (admin)\n" +
	"`/close` close the store (admin)\n" +
	"`/limit <amount>` set the daily ticket limit, 0 for none (admin)\n" +
	"`/settoday <amount>` override today's ticket count (admin)\n" +
	"`/help` show this message"
