package sender

import "fmt"

// Платёжные ссылки, зашитые в тексты писем.
const (
	stripe7DayLink  = "https://buy.stripe.com/5kQ7sMddybXy8dsfUR7Vm0a"
	stripe14DayLink = "https://buy.stripe.com/14A28s7Te3r251gcIF7Vm0b"
)

// FreePlanEmail возвращает HTML письма о доставке бесплатного плана.
// Чистая функция форматирования, без побочных эффектов.
func FreePlanEmail(userName string) string {
	if userName == "" {
		userName = "there"
	}
	return fmt.Sprintf(`
    <html>
    <body>
        <h2>Your FREE 3-Day Meal Plan is Ready!</h2>
        <p>Hi %s,</p>
        <p>Thank you for completing the WelFore Health quiz! Your personalized 3-day meal plan has been created.</p>

        <h3>What's Next?</h3>
        <p>Love your results? Upgrade to get even more value:</p>
        <ul>
            <li><strong>7-Day Plan</strong> - More variety and flexibility
                <a href="%s">Get 7-Day Plan</a>
            </li>
            <li><strong>14-Day Plan</strong> - Complete meal planning solution
                <a href="%s">Get 14-Day Plan</a>
            </li>
        </ul>

        <p>To your health,<br>WelFore Health Team</p>
    </body>
    </html>
    `, userName, stripe7DayLink, stripe14DayLink)
}

// UpsellEmail возвращает HTML письма для повторного пользователя.
func UpsellEmail(userName string) string {
	if userName == "" {
		userName = "there"
	}
	return fmt.Sprintf(`
    <html>
    <body>
        <h2>Welcome Back to WelFore Health!</h2>
        <p>Hi %s,</p>
        <p>We see you've already received your FREE 3-day meal plan. Ready to take your nutrition to the next level?</p>

        <h3>Exclusive Upgrade Options:</h3>
        <ul>
            <li><strong>7-Day Meal Plan</strong> - $19.99
                <a href="%s" style="background-color: #4CAF50; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px;">Get 7-Day Plan</a>
            </li>
            <li><strong>14-Day Meal Plan</strong> - $29.99
                <a href="%s" style="background-color: #2196F3; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px;">Get 14-Day Plan</a>
            </li>
        </ul>

        <p>These premium plans include:</p>
        <ul>
            <li>More meal variety</li>
            <li>Detailed nutritional information</li>
            <li>Shopping lists</li>
            <li>Meal prep tips</li>
        </ul>

        <p>To your health,<br>WelFore Health Team</p>
    </body>
    </html>
    `, userName, stripe7DayLink, stripe14DayLink)
}
