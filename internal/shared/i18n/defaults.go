package i18n

// DefaultCatalog carries the built-in copy for user-facing messages so the
// service works without a locale file; an on-disk catalog merged on top can
// extend or override any entry.
func DefaultCatalog() *Catalog {
	return NewCatalog(map[string]map[string]string{
		"reservation.error.name_required": {
			"en": "Name is required",
			"ku": "Nav pêwîst e",
			"ar": "الاسم مطلوب",
			"fa": "نام الزامی است",
			"tr": "İsim gereklidir",
			"es": "El nombre es obligatorio",
		},
		"reservation.error.email_required": {
			"en": "Email is required",
			"ku": "E-name pêwîst e",
			"ar": "البريد الإلكتروني مطلوب",
			"fa": "ایمیل الزامی است",
			"tr": "E-posta gereklidir",
			"es": "El correo electrónico es obligatorio",
		},
		"reservation.error.email_invalid": {
			"en": "Please enter a valid email address",
			"ku": "Ji kerema xwe e-nameyeke derbasdar binivîse",
			"ar": "يرجى إدخال بريد إلكتروني صالح",
			"fa": "لطفاً یک ایمیل معتبر وارد کنید",
			"tr": "Lütfen geçerli bir e-posta adresi girin",
			"es": "Introduce un correo electrónico válido",
		},
		"reservation.error.phone_required": {
			"en": "Phone number is required",
			"ku": "Hejmara telefonê pêwîst e",
			"ar": "رقم الهاتف مطلوب",
			"fa": "شماره تلفن الزامی است",
			"tr": "Telefon numarası gereklidir",
			"es": "El teléfono es obligatorio",
		},
		"reservation.error.phone_invalid": {
			"en": "Please enter a valid phone number",
			"ku": "Ji kerema xwe hejmareke telefonê ya derbasdar binivîse",
			"ar": "يرجى إدخال رقم هاتف صالح",
			"fa": "لطفاً شماره تلفن معتبر وارد کنید",
			"tr": "Lütfen geçerli bir telefon numarası girin",
			"es": "Introduce un número de teléfono válido",
		},
		"reservation.error.date_required": {
			"en": "Date is required",
			"ku": "Dîrok pêwîst e",
			"ar": "التاريخ مطلوب",
			"fa": "تاریخ الزامی است",
			"tr": "Tarih gereklidir",
			"es": "La fecha es obligatoria",
		},
		"reservation.error.date_invalid": {
			"en": "Please choose a valid date",
			"ku": "Ji kerema xwe dîrokeke derbasdar hilbijêre",
			"ar": "يرجى اختيار تاريخ صالح",
			"fa": "لطفاً تاریخ معتبری انتخاب کنید",
			"tr": "Lütfen geçerli bir tarih seçin",
			"es": "Elige una fecha válida",
		},
		"reservation.error.date_out_of_window": {
			"en": "Reservations are only accepted up to 60 days ahead",
			"ku": "Rezervasyon tenê heta 60 rojan pêş tê pejirandin",
			"ar": "تُقبل الحجوزات حتى 60 يوماً مقدماً فقط",
			"fa": "رزرو فقط تا ۶۰ روز آینده پذیرفته می‌شود",
			"tr": "Rezervasyonlar en fazla 60 gün önceden kabul edilir",
			"es": "Solo se aceptan reservas con hasta 60 días de antelación",
		},
		"reservation.error.time_required": {
			"en": "Time is required",
			"ku": "Dem pêwîst e",
			"ar": "الوقت مطلوب",
			"fa": "زمان الزامی است",
			"tr": "Saat gereklidir",
			"es": "La hora es obligatoria",
		},
		"reservation.error.time_invalid": {
			"en": "Please choose one of the offered times",
			"ku": "Ji kerema xwe yek ji demên pêşkêşkirî hilbijêre",
			"ar": "يرجى اختيار أحد الأوقات المتاحة",
			"fa": "لطفاً یکی از زمان‌های پیشنهادی را انتخاب کنید",
			"tr": "Lütfen sunulan saatlerden birini seçin",
			"es": "Elige uno de los horarios ofrecidos",
		},
		"reservation.error.party_size_required": {
			"en": "Party size is required",
			"ku": "Hejmara mêvanan pêwîst e",
			"ar": "عدد الضيوف مطلوب",
			"fa": "تعداد مهمان‌ها الزامی است",
			"tr": "Kişi sayısı gereklidir",
			"es": "El número de comensales es obligatorio",
		},
		"reservation.error.party_size_range": {
			"en": "Party size must be between 1 and 20",
			"ku": "Hejmara mêvanan divê di navbera 1 û 20 de be",
			"ar": "يجب أن يكون عدد الضيوف بين 1 و20",
			"fa": "تعداد مهمان‌ها باید بین ۱ و ۲۰ باشد",
			"tr": "Kişi sayısı 1 ile 20 arasında olmalıdır",
			"es": "El número de comensales debe estar entre 1 y 20",
		},
		"reservation.error.fully_booked": {
			"en": "Restaurant fully booked",
			"ku": "Xwaringeh bi tevahî tije ye",
			"ar": "المطعم محجوز بالكامل",
			"fa": "رستوران کاملاً رزرو شده است",
			"tr": "Restoran tamamen dolu",
			"es": "El restaurante está completo",
		},
		"reservation.error.submit_failed": {
			"en": "We could not complete your reservation, please try again",
			"ku": "Me nekarî rezervasyona te temam bikin, ji kerema xwe dîsa biceribîne",
			"ar": "تعذّر إتمام الحجز، يرجى المحاولة مرة أخرى",
			"fa": "رزرو شما تکمیل نشد، لطفاً دوباره تلاش کنید",
			"tr": "Rezervasyonunuz tamamlanamadı, lütfen tekrar deneyin",
			"es": "No pudimos completar tu reserva, inténtalo de nuevo",
		},
		"reservation.error.submit_in_progress": {
			"en": "Your reservation is already being processed",
			"ku": "Rezervasyona te jixwe tê pêvajokirin",
			"ar": "حجزك قيد المعالجة بالفعل",
			"fa": "رزرو شما هم‌اکنون در حال پردازش است",
			"tr": "Rezervasyonunuz zaten işleniyor",
			"es": "Tu reserva ya se está procesando",
		},
	})
}
